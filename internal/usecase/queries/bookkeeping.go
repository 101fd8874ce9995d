package queries

import (
	"context"
)

type CourseRequestReadStore interface {
	ListCourseRequests(ctx context.Context) ([]*CourseRequestView, error)
}

type BookkeepingQueries interface {
	ListCourseRequests(ctx context.Context) ([]*CourseRequestView, error)
}

type bookkeepingQueriesImpl struct {
	store CourseRequestReadStore
}

func NewBookkeepingQueries(store CourseRequestReadStore) BookkeepingQueries {
	return &bookkeepingQueriesImpl{store: store}
}

func (q *bookkeepingQueriesImpl) ListCourseRequests(ctx context.Context) ([]*CourseRequestView, error) {
	return q.store.ListCourseRequests(ctx)
}
