package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed jobs.yaml
var jobsYAML []byte

//go:embed companies.yaml
var companiesYAML []byte

// Job is one read-only job offer.
type Job struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Company     string   `yaml:"company" json:"company"`
	CompanyID   string   `yaml:"companyId" json:"companyId,omitempty"`
	Location    string   `yaml:"location" json:"location"`
	Contract    string   `yaml:"contract" json:"contract"`
	Salary      string   `yaml:"salary" json:"salary"`
	PostedAt    string   `yaml:"postedAt" json:"postedAt"`
	RemoteType  string   `yaml:"remoteType" json:"remoteType"`
	Tags        []string `yaml:"tags" json:"tags"`
	Description string   `yaml:"description" json:"description"`
}

// Company is one read-only company record.
type Company struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Location    string   `yaml:"location" json:"location"`
	Description string   `yaml:"description" json:"description"`
	Industry    string   `yaml:"industry" json:"industry"`
	Employees   string   `yaml:"employees" json:"employees"`
	Website     string   `yaml:"website" json:"website"`
	Culture     []string `yaml:"culture" json:"culture"`
	OpenRoles   int      `yaml:"openRoles" json:"openRoles"`
}

// Catalog holds the loaded job and company listings with id indexes.
type Catalog struct {
	jobs       []Job
	companies  []Company
	jobIndex   map[string]int
	companyIdx map[string]int
}

// Load parses the embedded catalog fixtures.
func Load() (*Catalog, error) {
	var jobs []Job
	if err := yaml.Unmarshal(jobsYAML, &jobs); err != nil {
		return nil, fmt.Errorf("parse jobs catalog: %w", err)
	}

	var companies []Company
	if err := yaml.Unmarshal(companiesYAML, &companies); err != nil {
		return nil, fmt.Errorf("parse companies catalog: %w", err)
	}

	c := &Catalog{
		jobs:       jobs,
		companies:  companies,
		jobIndex:   make(map[string]int, len(jobs)),
		companyIdx: make(map[string]int, len(companies)),
	}
	for i, job := range jobs {
		c.jobIndex[job.ID] = i
	}
	for i, company := range companies {
		c.companyIdx[company.ID] = i
	}
	return c, nil
}

// MustLoad loads the embedded catalogs or panics. The fixtures ship with
// the binary, so a parse failure is a build defect, not a runtime state.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Jobs returns all job offers in catalog order.
func (c *Catalog) Jobs() []Job {
	return append([]Job(nil), c.jobs...)
}

// Companies returns all companies in catalog order.
func (c *Catalog) Companies() []Company {
	return append([]Company(nil), c.companies...)
}

// JobByID looks up a job offer.
func (c *Catalog) JobByID(id string) (Job, bool) {
	i, ok := c.jobIndex[id]
	if !ok {
		return Job{}, false
	}
	return c.jobs[i], true
}

// CompanyByID looks up a company.
func (c *Catalog) CompanyByID(id string) (Company, bool) {
	i, ok := c.companyIdx[id]
	if !ok {
		return Company{}, false
	}
	return c.companies[i], true
}
