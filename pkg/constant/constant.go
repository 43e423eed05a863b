package constant

const (
	// ResetTokenExpiryMinutes is the validity window of a password reset token.
	ResetTokenExpiryMinutes = 60

	// ResetTokenBytes is the raw entropy of a generated reset token.
	ResetTokenBytes = 32

	// MaxAvatarSizeBytes caps avatar uploads at 5MB.
	MaxAvatarSizeBytes = 5 << 20

	MinProfileAge = 13
	MaxProfileAge = 120
)

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

const (
	TaskDateLayout = "2006-01-02"
)
