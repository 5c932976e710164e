// Package search ranks tasks against a free-text query. Matching is
// in-memory over the full task set; at personal-planner scale that is
// cheaper than maintaining a search index.
package search

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/repository"
)

const defaultLimit = 50

// Result is a matched task with its relations and the matcher's score.
type Result struct {
	domain.TaskWithRelations
	Score int `json:"score"`
}

type UseCase struct {
	tasks   repository.TaskRepository
	lists   repository.ListRepository
	matcher Matcher
	limit   int
	logger  *zap.Logger
}

func New(tasks repository.TaskRepository, lists repository.ListRepository, matcher Matcher, limit int, logger *zap.Logger) *UseCase {
	if matcher == nil {
		matcher = SubstringMatcher{}
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:   tasks,
		lists:   lists,
		matcher: matcher,
		limit:   limit,
		logger:  logger,
	}
}

// Search returns up to the configured limit of matching tasks, best
// score first, ties broken by newest creation time. A blank query
// short-circuits to an empty result without touching storage.
func (uc *UseCase) Search(ctx context.Context, query string) ([]Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Result{}, nil
	}

	tasks, err := uc.tasks.ListTopLevel(ctx)
	if err != nil {
		return nil, err
	}

	listNames, err := uc.listNames(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0)
	for _, t := range tasks {
		labels, err := uc.tasks.ListLabels(ctx, t.ID)
		if err != nil {
			return nil, err
		}

		c := Candidate{
			Task:     t,
			ListName: listNames[t.ListID],
			Labels:   labels,
		}
		score := uc.matcher.Score(query, &c)
		if score <= 0 {
			continue
		}

		subtasks, err := uc.tasks.ListSubtasks(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{
			TaskWithRelations: domain.TaskWithRelations{
				Task:     t,
				Labels:   labels,
				Subtasks: subtasks,
			},
			Score: score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	if len(results) > uc.limit {
		results = results[:uc.limit]
	}
	return results, nil
}

func (uc *UseCase) listNames(ctx context.Context) (map[string]string, error) {
	lists, err := uc.lists.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(lists))
	for _, l := range lists {
		names[l.ID] = l.Name
	}
	return names, nil
}
