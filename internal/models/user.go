package models

// User is an authoritative user record, including credentials.
// JSON tags match the persisted table layout.
type User struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Surname  string  `json:"surname"`
	Login    string  `json:"login"`
	Password string  `json:"password"`
	Phone    string  `json:"phone"`
	Mail     string  `json:"mail"`
	Follows  []int64 `json:"followUsers"`
	Online   bool    `json:"online"`
}

// PublicUser is the credential-stripped view of a user record handed out
// to callers and embedded into posts as the author snapshot.
type PublicUser struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Surname string  `json:"surname"`
	Phone   string  `json:"phone"`
	Mail    string  `json:"mail"`
	Follows []int64 `json:"followUsers"`
	Online  bool    `json:"online"`
}

// PublicInfo returns the user's public view. The follow list is copied so
// holders of the snapshot cannot mutate the table row.
func (u *User) PublicInfo() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Phone:   u.Phone,
		Mail:    u.Mail,
		Follows: append([]int64(nil), u.Follows...),
		Online:  u.Online,
	}
}

// FollowsUser reports whether id is in the user's follow list.
func (u *User) FollowsUser(id int64) bool {
	for _, f := range u.Follows {
		if f == id {
			return true
		}
	}
	return false
}

// Profile is the registration input.
type Profile struct {
	Name     string
	Surname  string
	Login    string
	Password string
	Phone    string
	Mail     string
}

// Credentials is the sign-in input.
type Credentials struct {
	Login    string
	Password string
}
