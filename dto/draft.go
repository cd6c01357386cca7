package dto

type StartDraftRequest struct {
	// ReportID re-hydrates an existing report for editing when set.
	ReportID string `json:"report_id"`
}

type DraftDetailsRequest struct {
	Title        string `json:"title"`
	ReporterName string `json:"reporter_name"`
}

type UpdateEntryRequest struct {
	// Description may be empty; clearing a description is a valid update.
	Description string `json:"description"`
}
