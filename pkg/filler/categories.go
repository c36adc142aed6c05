package filler

import "sort"

// DefaultFolder receives pages whose category is not in the category map.
const DefaultFolder = "misc"

var categoryFolders = map[string]string{
	"nebula_organism":   "nebula_organisms",
	"micro_drone":       "micro_drones",
	"ancient_artifact":  "ancient_artifacts",
	"gathering_tool":    "tools",
	"tool":              "tools",
	"material":          "materials",
	"metallic_compound": "materials",
	"furniture":         "furniture",
	"building":          "buildings",
	"npc":               "npcs",
}

// CategoryFolder maps an item category to its pages subdirectory.
func CategoryFolder(category string) string {
	if folder, ok := categoryFolders[category]; ok {
		return folder
	}
	return DefaultFolder
}

// Folders returns every distinct folder a category can map to, including
// DefaultFolder, sorted.
func Folders() []string {
	seen := map[string]bool{DefaultFolder: true}
	folders := []string{DefaultFolder}
	for _, folder := range categoryFolders {
		if !seen[folder] {
			seen[folder] = true
			folders = append(folders, folder)
		}
	}
	sort.Strings(folders)
	return folders
}
