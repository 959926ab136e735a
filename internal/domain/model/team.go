package model

// Team is an organization team identified by its slug.
type Team struct {
	ID   int64
	Slug string
	Name string
}

// FindTeam returns the team whose slug matches exactly, or false.
func FindTeam(teams []Team, slug string) (Team, bool) {
	for _, t := range teams {
		if t.Slug == slug {
			return t, true
		}
	}
	return Team{}, false
}
