package fetcher

import (
	"fmt"
	"path/filepath"
	"time"
)

// Task is one numbered URL and the file it is saved to. The file name only
// depends on the position of the URL in the list.
type Task struct {
	Index int
	URL   string
	Name  string
	Path  string
}

// NewTasks numbers urls from 1 in the given order.
func NewTasks(urls []string, folder, prefix, ext string) []Task {
	tasks := make([]Task, 0, len(urls))
	for i, url := range urls {
		name := fileName(prefix, i+1, ext)
		tasks = append(tasks, Task{
			Index: i + 1,
			URL:   url,
			Name:  name,
			Path:  filepath.Join(folder, name),
		})
	}
	return tasks
}

func fileName(prefix string, index int, ext string) string {
	return fmt.Sprintf("%s%d.%s", prefix, index, ext)
}

// Result is the outcome of a single task. Err covers the network, HTTP
// status and disk write failures alike.
type Result struct {
	Task    Task
	Err     error
	Size    int64
	Elapsed time.Duration
}

func (r Result) OK() bool { return r.Err == nil }

type Statistics struct {
	Downloaded int
	Failed     int
	TotalSize  int64
	TotalTime  time.Duration
}

func (s *Statistics) add(r Result) {
	if !r.OK() {
		s.Failed++
		return
	}
	s.Downloaded++
	s.TotalSize += r.Size
}
