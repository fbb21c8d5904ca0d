//go:build unit

package planner

import (
	"testing"

	"github.com/planning-tools/tdome/pkg/gitlab"
	"github.com/planning-tools/tdome/pkg/thunderdome"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const transferLink = "https://gitlab.com/acme/widgets/-/issues/42"

func TestPlanner_TransferPoints_SetsWeight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockGitLab, _ := newTestPlanner(ctrl)

	mockGitLab.EXPECT().ProjectID("acme", "widgets").Return(78, nil)
	mockGitLab.EXPECT().Issue(78, 42).Return(openIssue(1001, 42, transferLink), nil)
	mockGitLab.EXPECT().SetIssueWeight(78, 42, 8).Return(nil)

	p.TransferPoints([]thunderdome.Plan{
		{ID: "1001", Link: transferLink, Points: "8"},
	}, false)
}

func TestPlanner_TransferPoints_PreservesExistingWeight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockGitLab, _ := newTestPlanner(ctrl)

	issue := openIssue(1001, 42, transferLink)
	issue.Weight = intPtr(5)

	mockGitLab.EXPECT().ProjectID("acme", "widgets").Return(78, nil)
	mockGitLab.EXPECT().Issue(78, 42).Return(issue, nil)
	// No SetIssueWeight call: the existing weight is preserved

	p.TransferPoints([]thunderdome.Plan{
		{ID: "1001", Link: transferLink, Points: "8"},
	}, false)
}

func TestPlanner_TransferPoints_OverwritesExistingWeight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockGitLab, _ := newTestPlanner(ctrl)

	issue := openIssue(1001, 42, transferLink)
	issue.Weight = intPtr(5)

	mockGitLab.EXPECT().ProjectID("acme", "widgets").Return(78, nil)
	mockGitLab.EXPECT().Issue(78, 42).Return(issue, nil)
	mockGitLab.EXPECT().SetIssueWeight(78, 42, 8).Return(nil)

	p.TransferPoints([]thunderdome.Plan{
		{ID: "1001", Link: transferLink, Points: "8"},
	}, true)
}

func TestPlanner_TransferPoints_SkipsPlansWithoutPoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _ := newTestPlanner(ctrl)

	// No GitLab calls at all
	p.TransferPoints([]thunderdome.Plan{{ID: "1001", Link: transferLink}}, false)
}

func TestPlanner_TransferPoints_SkipsNonIntegerPoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _ := newTestPlanner(ctrl)

	p.TransferPoints([]thunderdome.Plan{
		{ID: "1001", Link: transferLink, Points: "1/2"},
	}, false)
}

func TestPlanner_TransferPoints_SkipsPlansWithoutLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _ := newTestPlanner(ctrl)

	p.TransferPoints([]thunderdome.Plan{{ID: "1001", Points: "8"}}, false)
}

func TestPlanner_TransferPoints_MalformedLinkDoesNotAbortBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockGitLab, _ := newTestPlanner(ctrl)

	// The second plan is still processed after the malformed first one
	mockGitLab.EXPECT().ProjectID("acme", "widgets").Return(78, nil)
	mockGitLab.EXPECT().Issue(78, 42).Return(openIssue(1001, 42, transferLink), nil)
	mockGitLab.EXPECT().SetIssueWeight(78, 42, 3).Return(nil)

	p.TransferPoints([]thunderdome.Plan{
		{ID: "1", Link: "https://example.com/not-a-tracker-url", Points: "8"},
		{ID: "1001", Link: transferLink, Points: "3"},
	}, false)
}

func TestPlanner_TransferPoints_MissingWeightField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockGitLab, _ := newTestPlanner(ctrl)

	issue := openIssue(1001, 42, transferLink)
	// A 2xx response without a weight field signals missing authorization
	issue.HasWeightField = false

	mockGitLab.EXPECT().ProjectID("acme", "widgets").Return(78, nil)
	mockGitLab.EXPECT().Issue(78, 42).Return(issue, nil)
	// No write attempted

	p.TransferPoints([]thunderdome.Plan{
		{ID: "1001", Link: transferLink, Points: "8"},
	}, false)
}

func TestPlanner_TransferPoints_WriteFailureDoesNotAbortBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockGitLab, _ := newTestPlanner(ctrl)

	otherLink := "https://gitlab.com/acme/widgets/-/issues/43"

	mockGitLab.EXPECT().ProjectID("acme", "widgets").Return(78, nil).Times(2)
	mockGitLab.EXPECT().Issue(78, 42).Return(openIssue(1001, 42, transferLink), nil)
	mockGitLab.EXPECT().SetIssueWeight(78, 42, 8).Return(gitlab.ErrRequestFailed)
	mockGitLab.EXPECT().Issue(78, 43).Return(openIssue(1002, 43, otherLink), nil)
	mockGitLab.EXPECT().SetIssueWeight(78, 43, 5).Return(nil)

	p.TransferPoints([]thunderdome.Plan{
		{ID: "1001", Link: transferLink, Points: "8"},
		{ID: "1002", Link: otherLink, Points: "5"},
	}, false)
}

func TestPlanner_AssignIteration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockGitLab, _ := newTestPlanner(ctrl)

	mockGitLab.EXPECT().ProjectID("acme", "widgets").Return(78, nil)
	mockGitLab.EXPECT().AddIssueNote(78, 42, "/iteration *iteration:99").Return(nil)

	p.AssignIteration([]thunderdome.Story{
		{ID: "s1", Link: transferLink},
		{ID: "s2"}, // no link, skipped
	}, 99)
}

func TestPlanner_AssignIteration_MalformedLinkSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockGitLab, _ := newTestPlanner(ctrl)

	mockGitLab.EXPECT().ProjectID("acme", "widgets").Return(78, nil)
	mockGitLab.EXPECT().AddIssueNote(78, 42, "/iteration *iteration:7").Return(nil)

	p.AssignIteration([]thunderdome.Story{
		{ID: "s1", Link: "https://example.com/elsewhere"},
		{ID: "s2", Link: transferLink},
	}, 7)
}

func TestPlanner_TransferPoints_EmptyPlans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _ := newTestPlanner(ctrl)
	require.NotPanics(t, func() {
		p.TransferPoints(nil, false)
	})
}
