package services

import (
	"context"
	"reflect"
	"testing"
	"time"
)

func TestCreatePostRoundTrip(t *testing.T) {
	uow := newTestUnitOfWork(t)
	service := NewPostService(uow)

	alice := seedUser(t, uow, "alice")

	created, err := service.CreatePost(context.Background(), alice.ID, CreatePostRequest{
		ImageUrl: "https://cdn.example.com/sunset.jpg",
		Caption:  "golden hour #sunset #Beach",
	})
	if err != nil {
		t.Fatalf("CreatePost returned error: %v", err)
	}

	fetched, err := service.GetPostByID(created.ID)
	if err != nil {
		t.Fatalf("GetPostByID returned error: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected post, got nil")
	}
	if fetched.UserID != alice.ID {
		t.Errorf("UserID = %q, want %q", fetched.UserID, alice.ID)
	}
	if fetched.ImageUrl != created.ImageUrl || fetched.Caption != created.Caption {
		t.Errorf("fetched post differs from created: %+v vs %+v", fetched, created)
	}
	if !fetched.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", fetched.CreatedAt, created.CreatedAt)
	}
	if fetched.Username != "alice" {
		t.Errorf("expected owner fields shaped in, got %+v", fetched)
	}
}

func TestCreatePostExtractsHashtags(t *testing.T) {
	uow := newTestUnitOfWork(t)
	service := NewPostService(uow)

	alice := seedUser(t, uow, "alice")

	created, err := service.CreatePost(context.Background(), alice.ID, CreatePostRequest{
		ImageUrl: "https://cdn.example.com/pic.jpg",
		Caption:  "trip #Travel with friends #travel #food",
	})
	if err != nil {
		t.Fatalf("CreatePost returned error: %v", err)
	}

	want := []string{"travel", "food"}
	if !reflect.DeepEqual(created.Hashtags, want) {
		t.Errorf("Hashtags = %v, want %v", created.Hashtags, want)
	}
}

func TestCreatePostEmptyOwner(t *testing.T) {
	uow := newTestUnitOfWork(t)
	service := NewPostService(uow)

	if _, err := service.CreatePost(context.Background(), "", CreatePostRequest{ImageUrl: "x"}); err == nil {
		t.Error("expected error for empty owner id")
	}
}

func TestGetPostByIDNotFound(t *testing.T) {
	uow := newTestUnitOfWork(t)
	service := NewPostService(uow)

	post, err := service.GetPostByID(9999)
	if err != nil {
		t.Fatalf("GetPostByID returned error: %v", err)
	}
	if post != nil {
		t.Errorf("expected nil for missing post, got %+v", post)
	}
}

func TestGetPostsByUserID(t *testing.T) {
	uow := newTestUnitOfWork(t)
	service := NewPostService(uow)

	alice := seedUser(t, uow, "alice")
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	seedPost(t, uow, alice.ID, base)
	seedPost(t, uow, alice.ID, base.Add(time.Hour))

	posts, err := service.GetPostsByUserID(alice.ID)
	if err != nil {
		t.Fatalf("GetPostsByUserID returned error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if !posts[0].CreatedAt.After(posts[1].CreatedAt) {
		t.Error("expected newest first")
	}

	empty, err := service.GetPostsByUserID("")
	if err != nil {
		t.Fatalf("GetPostsByUserID returned error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty slice for empty id, got %d", len(empty))
	}
}

func TestGetFeedPostsClamping(t *testing.T) {
	uow := newTestUnitOfWork(t)
	service := NewPostService(uow)

	viewer := seedUser(t, uow, "viewer")
	author := seedUser(t, uow, "author")
	seedFollow(t, uow, viewer.ID, author.ID)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		seedPost(t, uow, author.ID, base.Add(time.Duration(i)*time.Minute))
	}

	// page and pageSize below 1 fall back to 1 and 10.
	posts, err := service.GetFeedPosts(viewer.ID, 0, 0)
	if err != nil {
		t.Fatalf("GetFeedPosts returned error: %v", err)
	}
	if len(posts) != 10 {
		t.Errorf("expected default page of 10, got %d", len(posts))
	}

	// pageSize is capped at 50.
	capped, err := service.GetFeedPosts(viewer.ID, 1, 1000)
	if err != nil {
		t.Fatalf("GetFeedPosts returned error: %v", err)
	}
	if len(capped) != 15 {
		t.Errorf("expected all 15 posts under the cap, got %d", len(capped))
	}

	page2, err := service.GetFeedPosts(viewer.ID, 2, 10)
	if err != nil {
		t.Fatalf("GetFeedPosts returned error: %v", err)
	}
	if len(page2) != 5 {
		t.Errorf("expected 5 posts on page 2, got %d", len(page2))
	}

	page3, err := service.GetFeedPosts(viewer.ID, 3, 10)
	if err != nil {
		t.Fatalf("GetFeedPosts returned error: %v", err)
	}
	if len(page3) != 0 {
		t.Errorf("expected empty page 3, got %d", len(page3))
	}
}

func TestGetFeedPostsFollowingNobody(t *testing.T) {
	uow := newTestUnitOfWork(t)
	service := NewPostService(uow)

	viewer := seedUser(t, uow, "viewer")
	author := seedUser(t, uow, "author")
	seedPost(t, uow, author.ID, time.Now())

	posts, err := service.GetFeedPosts(viewer.ID, 1, 10)
	if err != nil {
		t.Fatalf("GetFeedPosts returned error: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("expected empty feed, got %d posts", len(posts))
	}
}

func TestExtractHashtags(t *testing.T) {
	cases := []struct {
		caption string
		want    []string
	}{
		{"no tags here", nil},
		{"#one", []string{"one"}},
		{"#One #two #ONE", []string{"one", "two"}},
		{"mid#word is not a boundary issue #real_tag", []string{"word", "real_tag"}},
	}
	for _, tc := range cases {
		got := extractHashtags(tc.caption)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("extractHashtags(%q) = %v, want %v", tc.caption, got, tc.want)
		}
	}
}
