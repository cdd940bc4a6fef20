package advisor

import "strings"

// Client represents a single advisory client record
type Client struct {
	Name              string `json:"name"`
	Age               int    `json:"age"`
	Profession        string `json:"profession"`
	Affiliation       string `json:"affiliation"`
	ActiveTIAAMember  bool   `json:"active_tiaa_member"`
	InvestedAssets    int    `json:"invested_assets"`
	LastContactedDays int    `json:"last_contacted_days"`
	Details           string `json:"details"`
}

// clientDatabase is the fixed demo dataset, keyed by city.
var clientDatabase = map[string][]Client{
	"Boston": {
		{
			Name:              "Lawrence Summers",
			Age:               55,
			Profession:        "Professor",
			Affiliation:       "Harvard University",
			ActiveTIAAMember:  true,
			InvestedAssets:    180000,
			LastContactedDays: 15,
			Details:           "Lawrence appears to be 10 years from retirement and is estimated to have $40k in investable assets that are not invested in TIAA. Lawrence has been with TIAA for over three years an favors an aggressive risk profile and passive management. Of the assets with TIAA, they appear to draw from a broad array of fund managers, including both TIAA-affiliated and outside funds.",
		},
		{
			Name:              "Peter Galison",
			Age:               64,
			Profession:        "Professor",
			Affiliation:       "Harvard University",
			ActiveTIAAMember:  true,
			InvestedAssets:    130000,
			LastContactedDays: 20,
			Details:           "Peter has been with TIAA for two years and he favors a conservative strategy that maximizes long term profits while avoiding risk.",
		},
		{
			Name:              "Eric Maskin",
			Age:               35,
			Profession:        "Professor",
			Affiliation:       "Boston University",
			ActiveTIAAMember:  true,
			InvestedAssets:    200000,
			LastContactedDays: 10,
		},
		{
			Name:             "Catherine Dulac",
			Age:              42,
			Profession:       "Professor",
			Affiliation:      "Boston College",
			ActiveTIAAMember: false,
		},
		{
			Name:              "Gary King",
			Age:               62,
			Profession:        "Professor",
			Affiliation:       "MIT",
			ActiveTIAAMember:  true,
			InvestedAssets:    80000,
			LastContactedDays: 50,
		},
	},
	"Chicago": {
		{
			Name:              "John doe",
			Age:               55,
			Profession:        "professor",
			Affiliation:       "Harvard University",
			ActiveTIAAMember:  true,
			InvestedAssets:    180000,
			LastContactedDays: 15,
		},
	},
}

// LookupClients filters the fixed client dataset.
// A non-empty city takes precedence over a client name; a name match is
// case-insensitive and scans every city. Returns an empty slice (never nil)
// when nothing matches or neither filter is provided.
func LookupClients(city, name string) []Client {
	if city != "" {
		clients, ok := clientDatabase[city]
		if !ok {
			return []Client{}
		}
		out := make([]Client, len(clients))
		copy(out, clients)
		return out
	}

	if name != "" {
		for _, clients := range clientDatabase {
			for _, client := range clients {
				if strings.EqualFold(client.Name, name) {
					return []Client{client}
				}
			}
		}
	}

	return []Client{}
}
