package httpapi

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/irlquest/server/internal/common"
	"github.com/irlquest/server/internal/logging"
	"github.com/irlquest/server/internal/server/identities"
	"github.com/irlquest/server/internal/server/quests"
	"github.com/irlquest/server/internal/server/tasks"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (nopLogger) With(args ...any) logging.Logger                    { return nopLogger{} }

type fakeIdentityRepo struct {
	mu            sync.Mutex
	nextID        int64
	byID          map[int64]*identities.Identity
	getByEmailErr error
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{byID: map[int64]*identities.Identity{}}
}

func (r *fakeIdentityRepo) Create(ctx context.Context, identity *identities.Identity) (*identities.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	stored := *identity
	stored.ID = r.nextID
	stored.IsActive = true
	stored.CreatedAt = time.Now()
	r.byID[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeIdentityRepo) GetByEmail(ctx context.Context, email string) (*identities.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getByEmailErr != nil {
		return nil, r.getByEmailErr
	}
	for _, identity := range r.byID {
		if identity.Email == email {
			out := *identity
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeIdentityRepo) GetByUsername(ctx context.Context, username string) (*identities.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, identity := range r.byID {
		if identity.Username == username {
			out := *identity
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeIdentityRepo) GetByID(ctx context.Context, id int64) (*identities.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	identity, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *identity
	return &out, nil
}

func (r *fakeIdentityRepo) Update(ctx context.Context, id int64, username *string, hashedPassword *string) (*identities.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	identity, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if username != nil {
		identity.Username = *username
	}
	if hashedPassword != nil {
		identity.HashedPassword = *hashedPassword
	}
	out := *identity
	return &out, nil
}

func (r *fakeIdentityRepo) delete(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}

func (r *fakeIdentityRepo) failGetByEmail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getByEmailErr = err
}

type fakeTaskRepo struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]*tasks.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{records: map[int64]*tasks.Task{}}
}

func (r *fakeTaskRepo) List(ctx context.Context, ownerID *int64, skip, limit int) ([]*tasks.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.records))
	for id, record := range r.records {
		if ownerID != nil && (record.OwnerID == nil || *record.OwnerID != *ownerID) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []*tasks.Task{}
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(out) >= limit {
			break
		}
		record := *r.records[id]
		out = append(out, &record)
	}
	return out, nil
}

func (r *fakeTaskRepo) Get(ctx context.Context, id int64) (*tasks.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *record
	return &out, nil
}

func (r *fakeTaskRepo) Create(ctx context.Context, record *tasks.Task) (*tasks.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	stored := *record
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.records[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, id int64, patch *tasks.Patch) (*tasks.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if patch.Title != nil {
		record.Title = *patch.Title
	}
	if patch.Description != nil {
		record.Description = patch.Description
	}
	if patch.Completed != nil {
		record.Completed = *patch.Completed
	}
	out := *record
	return &out, nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

type fakeQuestRepo struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]*quests.Quest
}

func newFakeQuestRepo() *fakeQuestRepo {
	return &fakeQuestRepo{records: map[int64]*quests.Quest{}}
}

func (r *fakeQuestRepo) List(ctx context.Context, ownerID *int64, skip, limit int) ([]*quests.Quest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.records))
	for id, record := range r.records {
		if ownerID != nil && (record.OwnerID == nil || *record.OwnerID != *ownerID) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []*quests.Quest{}
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(out) >= limit {
			break
		}
		record := *r.records[id]
		out = append(out, &record)
	}
	return out, nil
}

func (r *fakeQuestRepo) Get(ctx context.Context, id int64) (*quests.Quest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *record
	return &out, nil
}

func (r *fakeQuestRepo) Create(ctx context.Context, record *quests.Quest) (*quests.Quest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	stored := *record
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.records[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeQuestRepo) Update(ctx context.Context, id int64, patch *quests.Patch) (*quests.Quest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if patch.Title != nil {
		record.Title = *patch.Title
	}
	if patch.Description != nil {
		record.Description = patch.Description
	}
	if patch.Difficulty != nil {
		record.Difficulty = *patch.Difficulty
	}
	out := *record
	return &out, nil
}

func (r *fakeQuestRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}
