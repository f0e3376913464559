package request

type CreateInviteRequest struct {
	InviteCode string `json:"inviteCode" binding:"required"`
}
