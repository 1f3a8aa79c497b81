// Package record defines the persisted shape of the project collection and
// translates it to and from domain types. The shape matches the dashboard's
// original projects.json: projects keyed by name, tasks with capitalized
// field names, and stages as an object of name to color.
package record

// Collection is every persisted project keyed by name.
type Collection map[string]Project

// Project is the persisted form of a project. The name is the collection key.
type Project struct {
	Tasks  []Task   `json:"tasks" yaml:"tasks"`
	Stages StageMap `json:"stages" yaml:"stages"`
}

// Task is the persisted form of a task. Dates are YYYY-MM-DD strings.
type Task struct {
	Task   string `json:"Task" yaml:"Task"`
	Start  string `json:"Start" yaml:"Start"`
	Finish string `json:"Finish" yaml:"Finish"`
	Stage  string `json:"Stage" yaml:"Stage"`
	Color  string `json:"Color" yaml:"Color"`
}

// StageEntry is one stage name and its color.
type StageEntry struct {
	Name  string
	Color string
}
