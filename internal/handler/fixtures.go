// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "github.com/shayar/PhdMatcher-FE/models"

// DemoEmail and DemoPassword sign in to the account created by Seed.
const (
	DemoEmail    = "test@example.com"
	DemoPassword = "password123"
	DemoFullName = "Test User"
)

// Seed fills d with a small catalogue and the demo account.
func Seed(d *Directory) error {
	for _, inst := range demoInstitutions {
		d.AddInstitution(inst)
	}
	for _, p := range demoProfessors {
		d.AddProfessor(p)
	}

	_, err := d.CreateUser(DemoEmail, DemoPassword, DemoFullName)
	return err
}

var demoInstitutions = []models.Institution{
	{OpenAlexID: "I63966007", Name: "Massachusetts Institute of Technology", DisplayName: "MIT", CountryCode: "US", Country: "United States", City: "Cambridge", Type: "education", WorksCount: 310000},
	{OpenAlexID: "I40120149", Name: "University of Oxford", DisplayName: "Oxford", CountryCode: "GB", Country: "United Kingdom", City: "Oxford", Type: "education", WorksCount: 290000},
	{OpenAlexID: "I185261750", Name: "University of Toronto", DisplayName: "U of T", CountryCode: "CA", Country: "Canada", City: "Toronto", Type: "education", WorksCount: 350000},
	{OpenAlexID: "I4210133110", Name: "ETH Zurich", DisplayName: "ETH Zurich", CountryCode: "CH", Country: "Switzerland", City: "Zurich", Type: "education", WorksCount: 200000},
}

var demoProfessors = []models.Professor{
	{
		OpenAlexID:      "A5023888391",
		Name:            "Ada Thornton",
		InstitutionID:   "I63966007",
		InstitutionName: "Massachusetts Institute of Technology",
		WorksCount:      320,
		CitedByCount:    41000,
		HIndex:          78,
		I10Index:        210,
		Concepts: []models.ConceptScore{
			{ID: "C154945302", DisplayName: "Machine learning", Level: 1, Score: 0.92},
			{ID: "C204321447", DisplayName: "Natural language processing", Level: 1, Score: 0.88},
			{ID: "C71924100", DisplayName: "Medicine", Level: 0, Score: 0.41},
		},
		ResearchSummary: "Machine learning for natural language processing and drug discovery.",
		HomepageURL:     "https://people.example.edu/thornton",
	},
	{
		OpenAlexID:      "A5048491430",
		Name:            "Marcus Vell",
		InstitutionID:   "I185261750",
		InstitutionName: "University of Toronto",
		WorksCount:      410,
		CitedByCount:    850000,
		HIndex:          180,
		I10Index:        350,
		Concepts: []models.ConceptScore{
			{ID: "C108583219", DisplayName: "Deep learning", Level: 2, Score: 0.95},
			{ID: "C154945302", DisplayName: "Machine learning", Level: 1, Score: 0.9},
			{ID: "C50644808", DisplayName: "Artificial neural network", Level: 2, Score: 0.87},
		},
		ResearchSummary: "Neural networks, representation learning and deep learning.",
		ORCID:           "https://orcid.org/0000-0000-0000-0001",
	},
	{
		OpenAlexID:      "A5011231921",
		Name:            "Helena Price",
		InstitutionID:   "I40120149",
		InstitutionName: "University of Oxford",
		WorksCount:      560,
		CitedByCount:    72000,
		HIndex:          95,
		I10Index:        330,
		Concepts: []models.ConceptScore{
			{ID: "C107457646", DisplayName: "Multi-agent system", Level: 2, Score: 0.93},
			{ID: "C154945302", DisplayName: "Machine learning", Level: 1, Score: 0.52},
			{ID: "C41008148", DisplayName: "Computer science", Level: 0, Score: 0.8},
		},
		ResearchSummary: "Multi-agent systems, game theory and logic in artificial intelligence.",
		HomepageURL:     "https://people.example.edu/price",
	},
	{
		OpenAlexID:      "A5070125487",
		Name:            "Jonas Keller",
		InstitutionID:   "I4210133110",
		InstitutionName: "ETH Zurich",
		WorksCount:      380,
		CitedByCount:    56000,
		HIndex:          90,
		I10Index:        260,
		Concepts: []models.ConceptScore{
			{ID: "C154945302", DisplayName: "Machine learning", Level: 1, Score: 0.91},
			{ID: "C126255220", DisplayName: "Mathematical optimization", Level: 1, Score: 0.74},
			{ID: "C2524010", DisplayName: "Robotics", Level: 1, Score: 0.38},
		},
		ResearchSummary: "Probabilistic machine learning, Bayesian optimization and safe reinforcement learning.",
	},
	{
		OpenAlexID:      "A5002200714",
		Name:            "Priya Natarajan",
		InstitutionID:   "I63966007",
		InstitutionName: "Massachusetts Institute of Technology",
		WorksCount:      610,
		CitedByCount:    63000,
		HIndex:          112,
		I10Index:        420,
		Concepts: []models.ConceptScore{
			{ID: "C2524010", DisplayName: "Robotics", Level: 1, Score: 0.94},
			{ID: "C90509273", DisplayName: "Control theory", Level: 1, Score: 0.66},
		},
		ResearchSummary: "Robotics, mobile computing and soft robots.",
		HomepageURL:     "https://people.example.edu/natarajan",
	},
}
