package valueobjects

// Authorization is the outcome of an access check.
type Authorization string

const (
	Authorized   Authorization = "AUTHORIZED"
	Unauthorized Authorization = "UNAUTHORIZED"
)

func (a Authorization) IsAuthorized() bool {
	return a == Authorized
}

func (a Authorization) String() string {
	return string(a)
}
