// Package memory keeps all three collections in process memory. It backs
// `serve --in-memory` and the service and API tests. Documents are copied on
// the way in and out so callers never alias stored state.
package memory

import (
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/Yaghost/FitGoal/internal/domain"
	"github.com/Yaghost/FitGoal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds the collections. The zero value is not usable; call NewStore.
type Store struct {
	mu           sync.RWMutex
	students     *collection[domain.Student]
	exercises    *collection[domain.Exercise]
	workoutPlans *collection[domain.WorkoutPlan]
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		students:     newCollection[domain.Student](),
		exercises:    newCollection[domain.Exercise](),
		workoutPlans: newCollection[domain.WorkoutPlan](),
	}
}

// Students returns the student repository view of the store.
func (s *Store) Students() repository.StudentRepository { return &studentRepo{s} }

// Exercises returns the exercise repository view of the store.
func (s *Store) Exercises() repository.ExerciseRepository { return &exerciseRepo{s} }

// WorkoutPlans returns the workout plan repository view of the store.
func (s *Store) WorkoutPlans() repository.WorkoutPlanRepository { return &workoutPlanRepo{s} }

// Stats returns the aggregation view of the store.
func (s *Store) Stats() repository.StatsRepository { return &statsRepo{s} }

// collection keeps documents in insertion order, which stands in for the
// natural order of a document store scan.
type collection[T any] struct {
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{docs: make(map[primitive.ObjectID]T)}
}

func (c *collection[T]) insert(id primitive.ObjectID, doc T) {
	c.order = append(c.order, id)
	c.docs[id] = doc
}

func (c *collection[T]) get(id primitive.ObjectID) (T, bool) {
	doc, ok := c.docs[id]
	return doc, ok
}

func (c *collection[T]) put(id primitive.ObjectID, doc T) bool {
	if _, ok := c.docs[id]; !ok {
		return false
	}
	c.docs[id] = doc
	return true
}

func (c *collection[T]) remove(id primitive.ObjectID) bool {
	if _, ok := c.docs[id]; !ok {
		return false
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) all() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.docs[id])
	}
	return out
}

// sortDocs applies repository.ListOptions using the two sortable fields.
func sortDocs[T any](docs []T, opts repository.ListOptions, name func(T) string, created func(T) time.Time) error {
	field, desc, err := repository.ParseSort(opts.SortBy)
	if err != nil {
		return err
	}
	var less func(a, b T) bool
	switch field {
	case "":
		return nil
	case "name":
		less = func(a, b T) bool { return name(a) < name(b) }
	case "createdAt":
		less = func(a, b T) bool { return created(a).Before(created(b)) }
	}
	sort.SliceStable(docs, func(i, j int) bool {
		if desc {
			return less(docs[j], docs[i])
		}
		return less(docs[i], docs[j])
	})
	return nil
}

// containsFold mirrors the case-insensitive regex used by the Mongo store.
func containsFold(fragment string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(fragment))
}

func now() time.Time {
	return time.Now().UTC()
}
