package resume

type Education struct {
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Year        string `json:"year" yaml:"year"`
}

type Experience struct {
	Title       string `json:"title" yaml:"title"`
	Company     string `json:"company" yaml:"company"`
	Duration    string `json:"duration" yaml:"duration"`
	Description string `json:"description" yaml:"description"`
}

type Project struct {
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
}

// Profile is a parsed resume. Every field may be empty.
type Profile struct {
	Name       string       `json:"name" yaml:"name"`
	Email      string       `json:"email" yaml:"email"`
	Phone      string       `json:"phone,omitempty" yaml:"phone"`
	Skills     []string     `json:"skills" yaml:"skills"`
	Education  []Education  `json:"education" yaml:"education"`
	Experience []Experience `json:"experience" yaml:"experience"`
	Projects   []Project    `json:"projects" yaml:"projects"`
}
