// internal/loans/projection.go
package loans

// View is the flattened, display-oriented shape of a loan with its
// resolved associations. Null fields are omitted from the JSON output.
type View struct {
	ID        int64    `json:"id"`
	StartDate *Date    `json:"startDate,omitempty"`
	DueDate   *Date    `json:"dueDate,omitempty"`
	Titles    []string `json:"titles,omitempty"`
	UserName  string   `json:"userName,omitempty"`
}

// NewView projects a loan with resolved associations into its view.
// It is a pure mapping: titles follow the loan's book-set order and
// nothing is fetched.
func NewView(l *Loan) View {
	v := View{
		ID:       l.ID,
		UserName: l.UserName,
	}
	if !l.StartDate.IsZero() {
		start := l.StartDate
		v.StartDate = &start
	}
	if !l.DueDate.IsZero() {
		due := l.DueDate
		v.DueDate = &due
	}
	for _, b := range l.Books {
		v.Titles = append(v.Titles, b.Title)
	}
	return v
}
