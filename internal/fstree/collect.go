package fstree

import "sort"

// CollectFiles flattens tree into a naturally-sorted list of absolute file
// paths, descending into folders depth-first.
func CollectFiles(tree Tree) []string {
	var files []string
	collectInto(tree, &files)
	sort.Slice(files, func(i, j int) bool { return NaturalLess(files[i], files[j]) })
	return files
}

func collectInto(tree Tree, out *[]string) {
	for _, node := range tree {
		switch node.Type {
		case "file":
			*out = append(*out, node.Path)
		case "folder":
			collectInto(node.Children, out)
		}
	}
}
