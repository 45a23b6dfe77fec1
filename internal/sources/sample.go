package sources

import "careermatch-engine/internal/domain"

// SampleJobs is the built-in fallback dataset used when every external
// source fails, so the store never serves an empty corpus.
func SampleJobs(limit int) []domain.RawJobRecord {
	jobs := []domain.FlatPosting{
		{ID: "1", Position: "Senior Software Engineer", Company: "TechCorp", Location: "Remote",
			Description: "We are looking for a Senior Software Engineer to join our team. Experience with Python, React, and cloud technologies required.",
			Tags:        []string{"python", "react", "aws", "docker"}, Salary: "80000 - 120000",
			URL: "https://example.com/job1", Date: "2024-01-15"},
		{ID: "2", Position: "Data Scientist", Company: "DataTech", Location: "San Francisco, CA",
			Description: "Join our data science team to build machine learning models and analyze large datasets.",
			Tags:        []string{"python", "machine learning", "sql", "pandas"}, Salary: "90000 - 140000",
			URL: "https://example.com/job2", Date: "2024-01-14"},
		{ID: "3", Position: "Frontend Developer", Company: "WebSolutions", Location: "Remote",
			Description: "Build beautiful and responsive web applications using modern JavaScript frameworks.",
			Tags:        []string{"javascript", "react", "vue", "css"}, Salary: "70000 - 110000",
			URL: "https://example.com/job3", Date: "2024-01-13"},
		{ID: "4", Position: "DevOps Engineer", Company: "CloudTech", Location: "Austin, TX",
			Description: "Manage our cloud infrastructure and implement CI/CD pipelines for automated deployments.",
			Tags:        []string{"aws", "docker", "kubernetes", "jenkins"}, Salary: "85000 - 130000",
			URL: "https://example.com/job4", Date: "2024-01-12"},
		{ID: "5", Position: "Product Manager", Company: "InnovateCorp", Location: "New York, NY",
			Description: "Lead product development and work with cross-functional teams to deliver amazing user experiences.",
			Tags:        []string{"product management", "agile", "user research", "analytics"}, Salary: "95000 - 150000",
			URL: "https://example.com/job5", Date: "2024-01-11"},
		{ID: "6", Position: "Backend Developer", Company: "API Solutions", Location: "Seattle, WA",
			Description: "Build scalable backend services using Node.js, Python, and cloud technologies.",
			Tags:        []string{"nodejs", "python", "postgresql", "redis"}, Salary: "75000 - 115000",
			URL: "https://example.com/job6", Date: "2024-01-10"},
		{ID: "7", Position: "UX/UI Designer", Company: "Design Studio", Location: "Remote",
			Description: "Create beautiful and intuitive user interfaces for web and mobile applications.",
			Tags:        []string{"figma", "sketch", "adobe", "prototyping"}, Salary: "65000 - 100000",
			URL: "https://example.com/job7", Date: "2024-01-09"},
		{ID: "8", Position: "Machine Learning Engineer", Company: "AI Labs", Location: "Boston, MA",
			Description: "Develop and deploy machine learning models for production systems.",
			Tags:        []string{"tensorflow", "pytorch", "mlops", "python"}, Salary: "100000 - 160000",
			URL: "https://example.com/job8", Date: "2024-01-08"},
	}

	if limit <= 0 || limit > len(jobs) {
		limit = len(jobs)
	}

	out := make([]domain.RawJobRecord, 0, limit)
	for i := 0; i < limit; i++ {
		p := jobs[i]
		out = append(out, domain.RawJobRecord{Source: "sample", Flat: &p})
	}
	return out
}
