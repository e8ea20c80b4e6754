package services

import (
	"context"
	"testing"
	"time"

	"github.com/StudyFlow-2025/task-service/internal/models"
)

func task(title string, due time.Time, completed bool) *models.Task {
	return &models.Task{
		Title:     title,
		Category:  models.CategoryTask,
		Priority:  models.PriorityMedium,
		DueDate:   due,
		Completed: completed,
	}
}

func TestOverdue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tasks := []*models.Task{
		task("past incomplete", now.Add(-time.Hour), false),
		task("past completed", now.Add(-time.Hour), true),
		task("future", now.Add(time.Hour), false),
	}

	overdue := Overdue(tasks, now)
	if len(overdue) != 1 || overdue[0].Title != "past incomplete" {
		t.Errorf("expected only the incomplete past task, got %d", len(overdue))
	}
}

func TestOverdue_CompletingRemovesImmediately(t *testing.T) {
	now := time.Now()
	late := task("late", now.Add(-time.Hour), false)

	if len(Overdue([]*models.Task{late}, now)) != 1 {
		t.Fatal("expected task to be overdue")
	}

	late.Completed = true
	if len(Overdue([]*models.Task{late}, now)) != 0 {
		t.Error("completed task still reported overdue")
	}
}

func TestUpcoming_SortedAndCapped(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	var tasks []*models.Task
	// Seven tasks inside the window, added out of order
	for _, h := range []int{30, 5, 72, 12, 48, 2, 96} {
		tasks = append(tasks, task("due", now.Add(time.Duration(h)*time.Hour), false))
	}
	// Outside the window or excluded
	tasks = append(tasks,
		task("past", now.Add(-time.Hour), false),
		task("beyond horizon", now.AddDate(0, 0, 10), false),
		task("completed soon", now.Add(time.Hour), true),
	)

	upcoming := Upcoming(tasks, now, 7)
	if len(upcoming) != UpcomingLimit {
		t.Fatalf("expected %d tasks, got %d", UpcomingLimit, len(upcoming))
	}
	for i := 1; i < len(upcoming); i++ {
		if upcoming[i].DueDate.Before(upcoming[i-1].DueDate) {
			t.Error("upcoming tasks not sorted soonest first")
		}
	}
	if got := upcoming[0].DueDate; !got.Equal(now.Add(2 * time.Hour)) {
		t.Errorf("expected soonest task first, got %v", got)
	}
}

func TestProgress(t *testing.T) {
	t.Run("empty list reports zero", func(t *testing.T) {
		p := Progress(nil)
		if p.Percentage != 0 || p.TotalCount != 0 || p.CompletedCount != 0 {
			t.Errorf("expected zero progress, got %+v", p)
		}
	})

	t.Run("half completed", func(t *testing.T) {
		now := time.Now()
		tasks := []*models.Task{
			task("done", now, true),
			task("open", now, false),
		}
		p := Progress(tasks)
		if p.Percentage != 50 {
			t.Errorf("expected 50%%, got %v", p.Percentage)
		}
		if p.CompletedCount != 1 || p.TotalCount != 2 {
			t.Errorf("unexpected counts: %+v", p)
		}
	})

	t.Run("all completed", func(t *testing.T) {
		now := time.Now()
		tasks := []*models.Task{task("done", now, true)}
		if p := Progress(tasks); p.Percentage != 100 {
			t.Errorf("expected 100%%, got %v", p.Percentage)
		}
	})
}

func TestByCategoryAndByPriority(t *testing.T) {
	now := time.Now()
	tasks := []*models.Task{
		{Title: "a", Category: models.CategoryStudy, Priority: models.PriorityHigh, DueDate: now},
		{Title: "b", Category: models.CategoryStudy, Priority: models.PriorityLow, DueDate: now},
		{Title: "c", Category: models.CategoryTest, Priority: models.PriorityHigh, DueDate: now},
	}

	byCat := ByCategory(tasks)
	if byCat[models.CategoryStudy] != 2 || byCat[models.CategoryTest] != 1 {
		t.Errorf("unexpected category counts: %v", byCat)
	}
	if _, present := byCat[models.CategoryAssignment]; present {
		t.Error("empty category should be absent from the map")
	}

	byPrio := ByPriority(tasks)
	if byPrio[models.PriorityHigh] != 2 || byPrio[models.PriorityLow] != 1 {
		t.Errorf("unexpected priority counts: %v", byPrio)
	}
}

func TestTasksOnDate_CalendarDayBoundary(t *testing.T) {
	loc := time.UTC
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	tasks := []*models.Task{
		task("late evening", time.Date(2025, 3, 10, 23, 59, 0, 0, loc), false),
		task("next day early", time.Date(2025, 3, 11, 0, 1, 0, 0, loc), false),
		task("same day completed", time.Date(2025, 3, 10, 9, 0, 0, 0, loc), true),
	}

	onDate := TasksOnDate(tasks, date)
	if len(onDate) != 2 {
		t.Fatalf("expected 2 tasks on the day, got %d", len(onDate))
	}
	for _, got := range onDate {
		if got.Title == "next day early" {
			t.Error("task due one minute past midnight landed on the wrong day")
		}
	}
}

func TestDashboardService_OverviewScopedToViewer(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ana := registerStudent(t, env, "Ana", "ana@example.com", "secret123")
	ben := registerStudent(t, env, "Ben", "ben@example.com", "secret123")

	now := time.Now()
	createTask(t, env, ana, "Ana past", now.Add(-time.Hour))
	createTask(t, env, ana, "Ana future", now.Add(time.Hour))
	createTask(t, env, ben, "Ben task", now.Add(time.Hour))

	overview, err := env.dashboard.Overview(ctx, ana, now)
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}
	if overview.TotalTasks != 2 {
		t.Errorf("expected 2 visible tasks, got %d", overview.TotalTasks)
	}
	if overview.OverdueTasks != 1 {
		t.Errorf("expected 1 overdue task, got %d", overview.OverdueTasks)
	}
	if overview.Progress.Percentage != 0 {
		t.Errorf("expected 0%% progress, got %v", overview.Progress.Percentage)
	}
}
