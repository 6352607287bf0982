package public

import (
	"strings"

	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	apperrors "github.com/lceo-rwanda/portal/internal/services/web/platform/errors"
)

// programCard is the list view of one program.
type programCard struct {
	ID            string
	Name          string
	Description   string
	Category      mockdata.ProgramCategory
	Status        mockdata.ProgramStatus
	FundedPercent int64
	Beneficiaries int
}

// programDetail adds the figures shown on the program page.
type programDetail struct {
	programCard
	Program mockdata.Program
	Stories []mockdata.Story
}

// impactSummary collects the figures for the impact page.
type impactSummary struct {
	Stats   mockdata.DashboardStats
	Stories []mockdata.Story
}

type service struct{}

func newService() service { return service{} }

func (service) programs(lang mockdata.Language) []programCard {
	all := mockdata.Programs()
	cards := make([]programCard, 0, len(all))
	for _, p := range all {
		cards = append(cards, cardFor(p, lang))
	}
	return cards
}

func (service) activePrograms(lang mockdata.Language) []programCard {
	active := mockdata.ActivePrograms()
	cards := make([]programCard, 0, len(active))
	for _, p := range active {
		cards = append(cards, cardFor(p, lang))
	}
	return cards
}

func (service) program(programID string, lang mockdata.Language) (programDetail, error) {
	programID = strings.TrimSpace(programID)
	p, ok := mockdata.ProgramByID(programID)
	if !ok {
		return programDetail{}, apperrors.EK(apperrors.KindNotFound, "error.page.not_found.message", "program not found: "+programID)
	}
	var related []mockdata.Story
	for _, s := range mockdata.Stories() {
		if s.ProgramID == p.ID {
			related = append(related, s)
		}
	}
	return programDetail{programCard: cardFor(p, lang), Program: p, Stories: related}, nil
}

func (service) featuredStories() []mockdata.Story {
	return mockdata.FeaturedStories()
}

func (service) impact() impactSummary {
	return impactSummary{Stats: mockdata.Stats(), Stories: mockdata.Stories()}
}

func cardFor(p mockdata.Program, lang mockdata.Language) programCard {
	return programCard{
		ID:            p.ID,
		Name:          p.Name.In(lang),
		Description:   p.Description.In(lang),
		Category:      p.Category,
		Status:        p.Status,
		FundedPercent: p.FundedPercent(),
		Beneficiaries: p.BeneficiaryCount,
	}
}
