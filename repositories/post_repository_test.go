package repositories

import (
	"testing"
	"time"
)

func TestPostRepositoryGetByUserID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	alice := createTestUser(t, db, "alice")
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	createTestPost(t, db, alice.ID, base)
	createTestPost(t, db, alice.ID, base.Add(time.Hour))

	posts, err := repo.GetByUserID(alice.ID)
	if err != nil {
		t.Fatalf("GetByUserID returned error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if !posts[0].CreatedAt.After(posts[1].CreatedAt) {
		t.Errorf("expected newest first, got %v then %v", posts[0].CreatedAt, posts[1].CreatedAt)
	}
	if posts[0].User.Username != "alice" {
		t.Errorf("expected owner preloaded, got %+v", posts[0].User)
	}

	none, err := repo.GetByUserID(createTestUser(t, db, "bob").ID)
	if err != nil {
		t.Fatalf("GetByUserID returned error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected empty slice for user with no posts, got %d", len(none))
	}
}

func TestPostRepositoryGetFeedShortCircuit(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	createTestPost(t, db, bob.ID, time.Now())
	createTestPost(t, db, alice.ID, time.Now())

	// Alice follows nobody: the feed must be empty no matter how many
	// posts exist system-wide.
	posts, err := repo.GetFeed(alice.ID, 0, 10)
	if err != nil {
		t.Fatalf("GetFeed returned error: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("expected empty feed for viewer following nobody, got %d posts", len(posts))
	}
}

func TestPostRepositoryGetFeedExcludesOwnAndUnfollowed(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	viewer := createTestUser(t, db, "viewer")
	followed := createTestUser(t, db, "followed")
	stranger := createTestUser(t, db, "stranger")
	createTestFollow(t, db, viewer.ID, followed.ID)

	createTestPost(t, db, viewer.ID, time.Now())
	createTestPost(t, db, followed.ID, time.Now())
	createTestPost(t, db, stranger.ID, time.Now())

	posts, err := repo.GetFeed(viewer.ID, 0, 10)
	if err != nil {
		t.Fatalf("GetFeed returned error: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected only the followed user's post, got %d", len(posts))
	}
	if posts[0].UserID != followed.ID {
		t.Errorf("expected post owned by followed user, got %s", posts[0].UserID)
	}
}

func TestPostRepositoryGetFeedPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	viewer := createTestUser(t, db, "viewer")
	x := createTestUser(t, db, "x")
	y := createTestUser(t, db, "y")
	createTestFollow(t, db, viewer.ID, x.ID)
	createTestFollow(t, db, viewer.ID, y.ID)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		owner := x.ID
		if i%2 == 1 {
			owner = y.ID
		}
		createTestPost(t, db, owner, base.Add(time.Duration(i)*time.Minute))
	}

	page1, err := repo.GetFeed(viewer.ID, 0, 10)
	if err != nil {
		t.Fatalf("GetFeed page 1 returned error: %v", err)
	}
	if len(page1) != 10 {
		t.Fatalf("expected 10 posts on page 1, got %d", len(page1))
	}
	if !page1[0].CreatedAt.Equal(base.Add(14 * time.Minute)) {
		t.Errorf("expected newest post first, got %v", page1[0].CreatedAt)
	}

	page2, err := repo.GetFeed(viewer.ID, 10, 10)
	if err != nil {
		t.Fatalf("GetFeed page 2 returned error: %v", err)
	}
	if len(page2) != 5 {
		t.Fatalf("expected 5 posts on page 2, got %d", len(page2))
	}

	page3, err := repo.GetFeed(viewer.ID, 20, 10)
	if err != nil {
		t.Fatalf("GetFeed page 3 returned error: %v", err)
	}
	if len(page3) != 0 {
		t.Errorf("expected empty page 3, got %d posts", len(page3))
	}

	// No overlap across the page boundary.
	seen := make(map[uint]bool)
	for _, p := range page1 {
		seen[p.ID] = true
	}
	for _, p := range page2 {
		if seen[p.ID] {
			t.Errorf("post %d appeared on both pages", p.ID)
		}
	}
}

func TestPostRepositoryGetFeedTieBreak(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	viewer := createTestUser(t, db, "viewer")
	author := createTestUser(t, db, "author")
	createTestFollow(t, db, viewer.ID, author.ID)

	// Identical timestamps: ordering falls back to id descending.
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	first := createTestPost(t, db, author.ID, at)
	second := createTestPost(t, db, author.ID, at)

	posts, err := repo.GetFeed(viewer.ID, 0, 10)
	if err != nil {
		t.Fatalf("GetFeed returned error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != second.ID || posts[1].ID != first.ID {
		t.Errorf("expected id-descending tie-break, got %d then %d", posts[0].ID, posts[1].ID)
	}
}

func TestPostRepositoryCountByUserID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	alice := createTestUser(t, db, "alice")
	createTestPost(t, db, alice.ID, time.Now())
	createTestPost(t, db, alice.ID, time.Now())
	createTestPost(t, db, alice.ID, time.Now())

	count, err := repo.CountByUserID(alice.ID)
	if err != nil {
		t.Fatalf("CountByUserID returned error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 posts, got %d", count)
	}

	zero, err := repo.CountByUserID("")
	if err != nil || zero != 0 {
		t.Errorf("expected 0 for empty id, got %d, %v", zero, err)
	}
}
