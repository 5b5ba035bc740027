package core

// seed.go generates the bootstrap data the store is seeded with at
// startup. Generated records honor the seed contract: emails are unique
// and tracking numbers form a valid contiguous block above the floor.

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var seedNames = []string{
	"Alex Johnson", "Sarah Chen", "Michael Brown", "Emily Davis", "David Wilson",
	"Jessica Martinez", "Chris Taylor", "Amanda Garcia", "Robert Lee", "Lisa Wang",
	"James Rodriguez", "Anna Thompson", "Mark Anderson", "Rachel Kim", "Kevin Zhang",
	"Laura Patel", "Steven Clark", "Maria Gonzalez", "Ryan Murphy", "Jennifer Liu",
	"Thomas Wright", "Sophia Adams", "Daniel Singh", "Olivia Cooper", "Andrew Kumar",
}

var seedPositions = []string{
	"Software Engineer", "Frontend Developer", "Backend Developer", "Full Stack Developer",
	"Product Manager", "UX Designer", "Data Scientist", "DevOps Engineer",
	"Quality Assurance Engineer", "Technical Writer", "Marketing Manager", "Sales Representative",
}

var seedSkillSets = [][]string{
	{"JavaScript", "React", "Node.js"},
	{"Python", "Django", "PostgreSQL"},
	{"Java", "Spring Boot", "MySQL"},
	{"TypeScript", "Next.js", "MongoDB"},
	{"Vue.js", "Nuxt.js", "Express.js"},
	{"Angular", "NestJS", "Redis"},
	{"PHP", "Laravel", "MariaDB"},
	{"Go", "Docker", "Kubernetes"},
	{"AWS", "DevOps", "CI/CD"},
	{"React Native", "iOS", "Android"},
}

var seedEducation = []string{
	"Bachelor in Computer Science",
	"Master in Software Engineering",
	"Bachelor in Information Technology",
	"Master in Computer Science",
	"Bachelor in Electrical Engineering",
	"PhD in Computer Science",
	"Bachelor in Mathematics",
	"Master in Data Science",
}

// SeedApplicants generates count well-formed applicant records. Names are
// cycled; emails carry an index suffix past the first cycle so they stay
// unique at any count.
func SeedApplicants(count int) []Applicant {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	statuses := Statuses()
	records := make([]Applicant, 0, count)

	for i := 0; i < count; i++ {
		name := seedNames[i%len(seedNames)]
		local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
		if i >= len(seedNames) {
			local = fmt.Sprintf("%s%d", local, i)
		}

		a := Applicant{
			ID:             newID(),
			TrackingNumber: formatTracking(trackingFloor + i + 1),
			Name:           name,
			Email:          local + "@example.com",
			Phone:          fmt.Sprintf("+1%d", 1000000000+rng.Int63n(9000000000)),
			Position:       seedPositions[rng.Intn(len(seedPositions))],
			Status:         statuses[rng.Intn(len(statuses))],
			Source:         Sources[rng.Intn(len(Sources))],
			Experience:     rng.Intn(10),
			Skills:         append([]string(nil), seedSkillSets[rng.Intn(len(seedSkillSets))]...),
			Education:      seedEducation[rng.Intn(len(seedEducation))],
			AppliedDate:    time.Now().AddDate(0, 0, -rng.Intn(30)),
		}
		if rng.Float64() > 0.3 {
			a.ResumeURL = fmt.Sprintf("https://example.com/resumes/%s_resume.pdf",
				strings.ReplaceAll(name, " ", "_"))
		}
		if rng.Float64() > 0.5 {
			a.Notes = fmt.Sprintf("Interview scheduled. Strong candidate with %d years of experience.",
				1+rng.Intn(5))
		}
		records = append(records, a)
	}

	return records
}
