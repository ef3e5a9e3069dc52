// Package seed holds the fixed built-in user and post lists used to
// populate an empty durable store on first run.
package seed

// User is a seed user profile. Ids are assigned by the user repository in
// list order, starting at 1.
type User struct {
	Name     string
	Surname  string
	Login    string
	Password string
	Phone    string
	Mail     string
}

// Post is a seed post draft. AuthorID refers to a seed user id.
type Post struct {
	Title    string
	Message  string
	AuthorID int64
}

// Users returns the built-in user list.
func Users() []User {
	return []User{
		{Name: "Oleh", Surname: "Khomyk", Login: "oleg", Password: "111", Phone: "21", Mail: "oleh.khomyk@gmail.com"},
		{Name: "Petro", Surname: "Classniy", Login: "petya", Password: "222", Phone: "33", Mail: "petya.super@gmail.com"},
		{Name: "Ivan", Surname: "Ivanko", Login: "ivanko", Password: "333", Phone: "25", Mail: "ivan.start@gmail.com"},
		{Name: "Nazar", Surname: "Pertyka", Login: "nazarko", Password: "444", Phone: "29", Mail: "nazar.best@gmail.com"},
		{Name: "Andriy", Surname: "Chesniy", Login: "andruha", Password: "555", Phone: "17", Mail: "andriy.true@gmail.com"},
		{Name: "Slavik", Surname: "Voloshyn", Login: "slavko", Password: "777", Phone: "23", Mail: "slavko.cfg@gmail.com"},
		{Name: "Yura", Surname: "Spivak", Login: "yurec", Password: "666", Phone: "23", Mail: "yura.songer@gmail.com"},
	}
}

// Posts returns the built-in post list.
func Posts() []Post {
	return []Post{
		{
			Title:    "De Finibus Bonorum",
			Message:  "Sed ut perspiciatis unde omnis iste natus error sit voluptatem accusantium doloremque laudantium, totam rem aperiam, eaque ipsa quae ab illo inventore veritatis et quasi architecto beatae vitae dicta sunt explicabo.",
			AuthorID: 2,
		},
		{
			Title:    "Quis autem vel",
			Message:  "Neque porro quisquam est, qui dolorem ipsum quia dolor sit amet, consectetur, adipisci velit, sed quia non numquam eius modi tempora iniosam, nisi ut aliquid ex ea commodi consequatur?",
			AuthorID: 2,
		},
		{
			Title:    "Modi tempora",
			Message:  "Am est, qui dolorem ipsum quia dolor sit amet, consectetur, adipisci velit, sed quia non numquam eius modi tempora incidunt uquam quaerat voluptatem.",
			AuthorID: 3,
		},
		{
			Title:    "Exercitationem ullam",
			Message:  "M ipsum quia dolor sit amet, consectetur, adipisci velit, sed quia non numquam eius modi tempora incidunt ut labore et dolore magnam aliquam quaerat voluptatem.",
			AuthorID: 1,
		},
		{
			Title:    "Labore et dolore magnam",
			Message:  "Neque porro quisquam est, qui dolorem ipsum quia dolor sit amet, consectetur, adipisci velit, sed quia non numquam eius modi tempora incieniam, quis nostrum exercitationem ullam corporis suscipit laboriosam.",
			AuthorID: 3,
		},
		{
			Title:    "Voluptatem",
			Message:  "Ut enim ad minima veniam, quis nostrum exercitationem ullam corporis suscipit laboriosam, nisi ut aliquid ex ea commodi consequatur?",
			AuthorID: 2,
		},
		{
			Title:    "Lincidunt ut",
			Message:  "Neque porro quisquam est, qui dolorem ipsum quia dolor sit amet, consectetur, adipisci velit, sed quia non numquam eius modi tempora incidunt ut labore et dolore magnam aliquam quaerat voluptatem.",
			AuthorID: 1,
		},
	}
}
