package dto

// View models served on the browser routes.

type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// PageView wraps every view model with the navigation for the current session.
type PageView struct {
	Page       string      `json:"page"`
	SignedIn   bool        `json:"signed_in"`
	Navigation []NavLink   `json:"navigation"`
	Content    interface{} `json:"content,omitempty"`
}

type Action struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Href   string `json:"href"`
}

type Hero struct {
	Title       string   `json:"title"`
	Highlight   string   `json:"highlight"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Actions     []Action `json:"actions"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Testimonial struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Rating  int    `json:"rating"`
}

type HomeView struct {
	Hero         Hero             `json:"hero"`
	Features     []Feature        `json:"features"`
	Doctors      []DoctorResponse `json:"doctors"`
	Testimonials []Testimonial    `json:"testimonials"`
	Emergency    Action           `json:"emergency"`
}

type AuthView struct {
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	InitialTab string   `json:"initial_tab"`
	Actions    []Action `json:"actions"`
}

type DoctorDetailView struct {
	DoctorDetailResponse
	SignInRequired bool   `json:"sign_in_required"`
	Book           Action `json:"book"`
}

type ProfileView struct {
	Profile       ProfileResponse `json:"profile"`
	Save          Action          `json:"save"`
	DeleteAccount Action          `json:"delete_account"`
}

type NotFoundView struct {
	Message string  `json:"message"`
	Back    NavLink `json:"back"`
}
