package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/teamadmin/internal/server/models"
)

// createdAtLayout renders creation times in the moderator's local zone.
const createdAtLayout = "2006-01-02 15:04:05"

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func renderAd(w io.Writer, a models.Ad) {
	fmt.Fprintf(w, "# %s\n", a.Title)
	fmt.Fprintf(w, "Description: %s\n", a.Description)
	fmt.Fprintf(w, "Min: %d\n", a.Min)
	fmt.Fprintf(w, "Max: %d\n", a.Max)
	fmt.Fprintf(w, "Date: %s\n", a.Date)
	fmt.Fprintf(w, "Time: %s\n", a.Time)
	fmt.Fprintf(w, "Verified: %s\n", yesNo(a.Verified == models.Approved))
	fmt.Fprintf(w, "Available: %s\n", yesNo(a.Available))
	fmt.Fprintf(w, "Info: %s\n", a.Info)
	if !a.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Created at: %s\n", a.CreatedAt.Local().Format(createdAtLayout))
	}
}

func renderUser(w io.Writer, u models.User) {
	fmt.Fprintf(w, "# %s\n", u.FullName())
	if u.ImageURL != "" {
		fmt.Fprintf(w, "Image: %s\n", u.ImageURL)
	}
	fmt.Fprintf(w, "Email: %s\n", u.Email)
	fmt.Fprintf(w, "Phone: %s\n", u.Phone)
	fmt.Fprintf(w, "Instagram: %s\n", u.InstagramAccount)
	fmt.Fprintf(w, "University: %s\n", u.University)
	fmt.Fprintf(w, "Gender: %s\n", u.Gender)
	fmt.Fprintf(w, "Verified: %s\n", yesNo(u.Verified == models.Approved))
}

func renderNav(w io.Writer, index, total int, canPrev, canNext bool) {
	prev, next := "(p)rev", "(n)ext"
	if !canPrev {
		prev = "-"
	}
	if !canNext {
		next = "-"
	}
	fmt.Fprintf(w, "[%d/%d]  %s | %s | (v)erify | (r)eject\n", index+1, total, prev, next)
}
