package catalog

import "github.com/sangam-music/sangam/models"

const defaultMoodQuery = "bollywood songs"

// Static lookup tables, populated once and never mutated

var moodQueries = map[string]string{
	"happy":      "bollywood happy songs dance",
	"sad":        "bollywood sad songs emotional arijit singh",
	"romantic":   "bollywood love songs romantic",
	"motivation": "bollywood motivational songs inspirational",
	"party":      "bollywood party songs dance",
	"chill":      "bollywood chill relaxing songs",
	"devotional": "hindi devotional bhajan songs",
	"classical":  "indian classical music raag",
}

var moodFallbacks = map[string][]models.Song{
	"happy": {
		{Title: "Kal Ho Naa Ho", Artist: "Sonu Nigam", Year: "2003", Duration: "5:08"},
		{Title: "Gallan Goodiyaan", Artist: "Yashita Sharma", Year: "2014", Duration: "4:15"},
		{Title: "London Thumakda", Artist: "Neha Kakkar", Year: "2014", Duration: "3:45"},
	},
	"sad": {
		{Title: "Tum Hi Ho", Artist: "Arijit Singh", Year: "2013", Duration: "4:22"},
		{Title: "Channa Mereya", Artist: "Arijit Singh", Year: "2016", Duration: "4:49"},
		{Title: "Ae Dil Hai Mushkil", Artist: "Arijit Singh", Year: "2016", Duration: "4:37"},
	},
	"romantic": {
		{Title: "Raataan Lambiyan", Artist: "Tanishk Bagchi", Year: "2021", Duration: "3:28"},
		{Title: "Pehla Nasha", Artist: "Udit Narayan", Year: "2000", Duration: "6:12"},
		{Title: "Tere Bina", Artist: "A.R. Rahman", Year: "2007", Duration: "5:45"},
	},
	"motivation": {
		{Title: "Zinda", Artist: "Shankar Mahadevan", Year: "2006", Duration: "5:30"},
		{Title: "Chak De India", Artist: "Sukhwinder Singh", Year: "2007", Duration: "4:10"},
		{Title: "Jai Ho", Artist: "A.R. Rahman", Year: "2008", Duration: "5:09"},
	},
	"party": {
		{Title: "Nagada Sang Dhol", Artist: "Osman Mir", Year: "2013", Duration: "4:32"},
		{Title: "Tattad Tattad", Artist: "Arijit Singh", Year: "2013", Duration: "4:16"},
		{Title: "Malhari", Artist: "Vishal Dadlani", Year: "2015", Duration: "4:32"},
	},
	"chill": {
		{Title: "Kun Faya Kun", Artist: "A.R. Rahman", Year: "2011", Duration: "7:50"},
		{Title: "Ilahi", Artist: "Arijit Singh", Year: "2014", Duration: "5:02"},
		{Title: "Mast Magan", Artist: "Arijit Singh", Year: "2014", Duration: "4:32"},
	},
	"devotional": {
		{Title: "Shri Hanuman Chalisa", Artist: "Hariharan", Year: "2008", Duration: "8:15"},
		{Title: "Om Jai Jagdish Hare", Artist: "Anuradha Paudwal", Year: "1995", Duration: "6:30"},
		{Title: "Gayatri Mantra", Artist: "Anuradha Paudwal", Year: "2000", Duration: "3:45"},
	},
	"classical": {
		{Title: "Raag Yaman", Artist: "Pandit Ravi Shankar", Year: "1960", Duration: "15:30"},
		{Title: "Raag Bhairav", Artist: "Ustad Ali Akbar Khan", Year: "1965", Duration: "18:45"},
		{Title: "Raag Malkauns", Artist: "Pandit Jasraj", Year: "1970", Duration: "22:15"},
	},
}
