// Package planner implements the issue aggregation and plan reconciliation
// engine between GitLab and Thunderdome: it collects issues from tracker
// scopes into a deduplicated index, synthesizes board plans from them, and
// writes voted points back to the tracker as issue weights.
package planner

import (
	"fmt"

	"github.com/planning-tools/tdome/pkg/gitlab"
	"github.com/planning-tools/tdome/pkg/logger"
	"github.com/planning-tools/tdome/pkg/thunderdome"
)

// Planner drives the sync flows between the tracker and the board.
type Planner struct {
	gitlab  gitlab.Client
	grammar *gitlab.Grammar
	board   thunderdome.Client
	logger  logger.Logger
}

// NewPlannerParams contains parameters for creating a new Planner instance.
type NewPlannerParams struct {
	GitLab  gitlab.Client
	Grammar *gitlab.Grammar
	Board   thunderdome.Client
	Logger  logger.Logger
}

// NewPlanner creates a new Planner instance.
func NewPlanner(params NewPlannerParams) *Planner {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Planner{
		gitlab:  params.GitLab,
		grammar: params.Grammar,
		board:   params.Board,
		logger:  log,
	}
}

// CreateBattle collects issues for the given scopes, synthesizes plans and
// creates a new battle owned by the authenticated user. Battle creation is
// skipped entirely when no plans were generated.
func (p *Planner) CreateBattle(scopes Scopes, opts PlanOptions, settings thunderdome.BattleSettings) error {
	index := p.Collect(scopes)
	plans := p.SynthesizePlans(index, opts)

	if len(plans) == 0 {
		p.logger.Infof("Skipping battle creation: no plans generated")
		return nil
	}

	user, err := p.board.CurrentUser()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBoardAuthentication, err)
	}

	return p.board.CreateBattle(user.ID, settings, plans)
}

// UpdateBattle adds plans to an existing battle for every collected issue
// that is not yet represented on it.
func (p *Planner) UpdateBattle(battleID string, scopes Scopes, opts PlanOptions) error {
	existing, err := p.board.BattlePlans(battleID)
	if err != nil {
		return err
	}
	p.logger.Infof("Found %d unique Thunderdome plans", len(existing))

	index := p.Collect(scopes)
	residual := p.Reconcile(existing, index)
	plans := p.SynthesizePlans(residual, opts)
	p.logger.Infof("Found %d new plans", len(plans))

	if len(plans) == 0 {
		return nil
	}
	return p.board.AddBattlePlans(battleID, plans)
}

// FetchPoints fetches the plans of a battle and writes their voted points
// back to the linked issues as weights.
func (p *Planner) FetchPoints(battleID string, overwrite bool) error {
	plans, err := p.board.BattlePlans(battleID)
	if err != nil {
		return err
	}
	p.TransferPoints(plans, overwrite)
	return nil
}

// AssignBoardIteration fetches the stories of a storyboard and assigns the
// iteration referenced by the given URL to each linked issue.
func (p *Planner) AssignBoardIteration(boardID, iterationLink string, filterGoals, filterColumns []string) error {
	ref, err := p.grammar.ParseIteration(iterationLink)
	if err != nil {
		return err
	}

	stories, err := p.board.StoryboardStories(boardID, filterGoals, filterColumns)
	if err != nil {
		return err
	}
	p.logger.Debugf("Fetched %d stories", len(stories))

	p.AssignIteration(stories, ref.ID)
	return nil
}
