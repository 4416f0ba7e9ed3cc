package models

// HospitalPage is the envelope returned by the paginated hospital listing.
// Field names mirror the page object the frontend already consumes.
type HospitalPage struct {
	Content       []Hospital `json:"content"`
	TotalElements int64      `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
	Size          int        `json:"size"`
	Number        int        `json:"number"`
	First         bool       `json:"first"`
	Last          bool       `json:"last"`
}

// NewHospitalPage assembles the envelope from one page of results.
// page is 0-based.
func NewHospitalPage(content []Hospital, total int64, page, size int) HospitalPage {
	if content == nil {
		content = []Hospital{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return HospitalPage{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Size:          size,
		Number:        page,
		First:         page == 0,
		Last:          page >= totalPages-1,
	}
}
