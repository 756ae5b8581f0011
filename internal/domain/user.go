package domain

// User is the identity attached to an authenticated session.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// AuthSession is the persisted auth record for one storefront session.
// The zero value is a signed-out session.
type AuthSession struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}
