package seeding

import (
	"context"
	"fmt"

	"github.com/Hafizirfan96/spu-backend/internal/repositories"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// punjabDistricts is the fixed district catalog offered on the
// application form. "Other" routes free-text entry on the profile.
var punjabDistricts = []string{
	"Attock",
	"Bahawalnagar",
	"Bahawalpur",
	"Bhakkar",
	"Chakwal",
	"Chiniot",
	"Dera Ghazi Khan",
	"Faisalabad",
	"Gujranwala",
	"Gujrat",
	"Hafizabad",
	"Jhang",
	"Kasur",
	"Khanewal",
	"Khushab",
	"Lahore",
	"Layyah",
	"Lodhran",
	"Mandi Bahauddin",
	"Mianwali",
	"Multan",
	"Muzaffargarh",
	"Nankana Sahib",
	"Narowal",
	"Okara",
	"Pakpattan",
	"Rahim Yar Khan",
	"Rajanpur",
	"Rawalpindi",
	"Sahiwal",
	"Sargodha",
	"Sheikhupura",
	"Sialkot",
	"Toba Tek Singh",
	"Vehari",
	"Murree",
	"Talagang",
	"Kot Addu",
	"Other",
}

var posts = []struct {
	name        string
	description string
}{
	{"Assistant Director", "Manage departmental initiatives and supervise teams."},
	{"Deputy Director", "Oversee programs and coordinate inter-departmental efforts."},
	{"Director", "Lead strategic planning and execution across the department."},
}

// SeedCatalog inserts the posts and districts catalogs. Inserts are
// idempotent so the seed can run on every boot.
func SeedCatalog(ctx context.Context, db repositories.DB) error {
	for _, name := range punjabDistricts {
		if _, err := db.Exec(ctx,
			`INSERT INTO districts (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return fmt.Errorf("failed to seed district %q: %w", name, err)
		}
	}

	for _, p := range posts {
		if _, err := db.Exec(ctx,
			`INSERT INTO posts (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			p.name, p.description); err != nil {
			return fmt.Errorf("failed to seed post %q: %w", p.name, err)
		}
	}

	utils.Logger.Infof("Seeded catalog: %d districts, %d posts.", len(punjabDistricts), len(posts))
	return nil
}
