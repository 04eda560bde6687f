package note

type CreateNoteRequest struct {
	Content string `json:"content" binding:"required"`
	LeadID  int64  `json:"leadId" binding:"required"`
}

type UpdateNoteRequest struct {
	Content string `json:"content" binding:"required"`
}
