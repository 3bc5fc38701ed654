package models

import (
	"errors"
	"testing"
)

var alice = Identity{UserID: "alice", Name: "Alice"}

func TestCreatePostStampsCreator(t *testing.T) {
	database := newTestDB(t)

	post, err := CreatePost(database, alice, "Hello", "World")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.BlogID == 0 {
		t.Error("blog id not assigned")
	}
	if post.CreatorUserID != "alice" || post.CreatorName != "Alice" {
		t.Errorf("creator = %q/%q", post.CreatorUserID, post.CreatorName)
	}
	if post.DateCreated.IsZero() {
		t.Error("date_created not set")
	}

	stored, err := GetPost(database, post.BlogID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if stored == nil || stored.Title != "Hello" || stored.Body != "World" {
		t.Errorf("stored = %+v", stored)
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	database := newTestDB(t)

	for _, title := range []string{"first", "second", "third"} {
		if _, err := CreatePost(database, alice, title, "body"); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	posts, err := ListPosts(database)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("len = %d, want 3", len(posts))
	}
	want := []string{"third", "second", "first"}
	for i, title := range want {
		if posts[i].Title != title {
			t.Errorf("posts[%d].Title = %q, want %q", i, posts[i].Title, title)
		}
	}
}

func TestListPostsPrependsNewPost(t *testing.T) {
	database := newTestDB(t)

	if _, err := CreatePost(database, alice, "old", "body"); err != nil {
		t.Fatalf("create: %v", err)
	}
	created, err := CreatePost(database, alice, "new", "body")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	posts, err := ListPosts(database)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if posts[0].BlogID != created.BlogID {
		t.Errorf("head of list = %d, want %d", posts[0].BlogID, created.BlogID)
	}
}

func TestUpdatePostMutatesTitleAndBodyOnly(t *testing.T) {
	database := newTestDB(t)

	post, err := CreatePost(database, alice, "Hello", "World")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := UpdatePost(database, post.BlogID, "Hello 2", "World 2"); err != nil {
		t.Fatalf("update post: %v", err)
	}

	updated, err := GetPost(database, post.BlogID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if updated.Title != "Hello 2" || updated.Body != "World 2" {
		t.Errorf("updated = %q/%q", updated.Title, updated.Body)
	}
	if updated.CreatorUserID != post.CreatorUserID || updated.CreatorName != post.CreatorName {
		t.Error("creator fields changed on update")
	}
	if !updated.DateCreated.Equal(post.DateCreated) {
		t.Errorf("date_created changed: %v -> %v", post.DateCreated, updated.DateCreated)
	}
}

func TestUpdatePostMissing(t *testing.T) {
	database := newTestDB(t)

	err := UpdatePost(database, 999, "title", "body")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeletePost(t *testing.T) {
	database := newTestDB(t)

	post, err := CreatePost(database, alice, "Hello", "World")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := DeletePost(database, post.BlogID); err != nil {
		t.Fatalf("delete post: %v", err)
	}

	gone, err := GetPost(database, post.BlogID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if gone != nil {
		t.Errorf("post still present: %+v", gone)
	}

	posts, err := ListPosts(database)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("len = %d, want 0", len(posts))
	}
}

func TestDeletePostMissing(t *testing.T) {
	database := newTestDB(t)

	err := DeletePost(database, 999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
