package entity

// Employee is a staff record managed through the employee directory.
// An employee may be created directly, or mirrored automatically from a
// user account the first time that email completes signup verification.
// After mirroring the two records live independent lives; there is no
// reconciliation between them.
type Employee struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
