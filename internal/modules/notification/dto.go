package notification

// CreateNotificationRequest is the direct-create payload. Type defaults to
// "system" when omitted.
type CreateNotificationRequest struct {
	Message string `json:"message" binding:"required"`
	Type    string `json:"type,omitempty" binding:"omitempty,oneof=lead meeting status system"`
	UserID  int64  `json:"userId" binding:"required"`
	LeadID  *int64 `json:"leadId,omitempty"`
}
