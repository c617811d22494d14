package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

func TestMemberRepository_Create(t *testing.T) {
	repo := NewMemberRepository(nil)
	ctx := context.Background()

	member := &domain.Member{Name: "Sarah Jenkins", Email: "sarah@example.com"}
	require.NoError(t, repo.Create(ctx, member))
	require.NotEmpty(t, member.ID, "create should assign an id")

	got, err := repo.GetByEmail(ctx, "sarah@example.com")
	require.NoError(t, err)
	require.Equal(t, member.ID, got.ID)
	require.NotNil(t, got.RSVPEventIDs)
}

func TestMemberRepository_Create_DuplicateEmail(t *testing.T) {
	repo := NewMemberRepository(nil)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Member{Name: "A", Email: "taken@example.com"}))
	err := repo.Create(ctx, &domain.Member{Name: "B", Email: "taken@example.com"})
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestMemberRepository_Create_EmptyEmailsDoNotCollide(t *testing.T) {
	repo := NewMemberRepository(nil)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Member{Name: "A"}))
	require.NoError(t, repo.Create(ctx, &domain.Member{Name: "B"}))
}

func TestMemberRepository_GetByEmail_CaseSensitive(t *testing.T) {
	repo := NewMemberRepository([]*domain.Member{
		{ID: "m1", Name: "Sarah", Email: "sarah@example.com"},
	})
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "Sarah@example.com")
	require.ErrorIs(t, err, domain.ErrMemberNotFound)

	got, err := repo.GetByEmail(ctx, "sarah@example.com")
	require.NoError(t, err)
	require.Equal(t, "m1", got.ID)
}

func TestMemberRepository_ReadsAreDetached(t *testing.T) {
	repo := NewMemberRepository([]*domain.Member{
		{ID: "m1", Name: "Sarah", Email: "sarah@example.com", RSVPEventIDs: []string{"e1"}},
	})
	ctx := context.Background()

	got, err := repo.GetByEmail(ctx, "sarah@example.com")
	require.NoError(t, err)

	got.Name = "Mutated"
	got.RSVPEventIDs = append(got.RSVPEventIDs, "e2")

	again, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, "Sarah", again.Name, "stored record must not observe caller mutations")
	require.Equal(t, []string{"e1"}, again.RSVPEventIDs)
}

func TestMemberRepository_Update(t *testing.T) {
	repo := NewMemberRepository([]*domain.Member{
		{ID: "m1", Name: "Sarah", Email: "sarah@example.com"},
		{ID: "m2", Name: "Marcus", Email: "marcus@example.com"},
	})
	ctx := context.Background()

	m, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	m.Company = "New Co"
	require.NoError(t, repo.Update(ctx, m))

	got, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, "New Co", got.Company)

	m.Email = "marcus@example.com"
	require.ErrorIs(t, repo.Update(ctx, m), domain.ErrDuplicateEmail)

	require.ErrorIs(t, repo.Update(ctx, &domain.Member{ID: "ghost"}), domain.ErrMemberNotFound)
}

func TestMemberRepository_CountSubscribed(t *testing.T) {
	repo := NewMemberRepository([]*domain.Member{
		{ID: "m1", Email: "a@example.com", Subscribed: true},
		{ID: "m2", Email: "b@example.com", Subscribed: false},
		{ID: "m3", Email: "c@example.com", Subscribed: true},
	})

	n, err := repo.CountSubscribed(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestMemberRepository_SeededRoster(t *testing.T) {
	repo := NewMemberRepository(SeedMembers())
	ctx := context.Background()

	members, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "Sarah Jenkins", got.Name)

	// Spotlight members have no emails; lookups by email must miss them,
	// and a signup with any email must not collide with the seed roster.
	_, err = repo.GetByEmail(ctx, "")
	require.ErrorIs(t, err, domain.ErrMemberNotFound)
}
