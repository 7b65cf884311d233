package pool

import (
	"path"

	"iconforge/internal/model"
)

// DeclarationTasks lists the type declaration jobs: the icon factory, each
// style's default entry and each style's per-weight entries.
func DeclarationTasks(srcDir, distDir string, styles []model.Style, weights []model.Weight) []Task {
	stems := []string{"createMaterialIcon"}
	for _, style := range styles {
		stems = append(stems, path.Join(string(style), "index"))
	}
	for _, weight := range weights {
		for _, style := range styles {
			stems = append(stems, path.Join(string(style), weight.Dir()))
		}
	}
	tasks := make([]Task, len(stems))
	for i, stem := range stems {
		tasks[i] = Task{
			Input:  path.Join(srcDir, stem+".ts"),
			Output: path.Join(distDir, stem+".d.ts"),
		}
	}
	return tasks
}
