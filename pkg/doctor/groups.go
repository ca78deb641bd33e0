package doctor

// groupDefinitions defines the check groups with their metadata.
var groupDefinitions = map[string]struct {
	Name        string
	Description string
	CheckIDs    []string
}{
	GroupSystem: {
		Name:        "System",
		Description: "Core tools needed to install and update packages",
		CheckIDs:    []string{IDArch, IDPacman, IDSudo, IDGit, IDMakepkg},
	},
	GroupAUR: {
		Name:        "AUR",
		Description: "Helper used for packages outside the official repos",
		CheckIDs:    []string{IDAurHelper},
	},
	GroupScripts: {
		Name:        "Scripts",
		Description: "Install scripts discoverable by acli run",
		CheckIDs:    []string{IDScriptsDir},
	},
}

// GetGroups returns all check groups in display order.
func GetGroups() []CheckGroup {
	var groups []CheckGroup

	for _, groupID := range GetAllGroupIDs() {
		def := groupDefinitions[groupID]
		groups = append(groups, CheckGroup{
			ID:          groupID,
			Name:        def.Name,
			Description: def.Description,
		})
	}

	return groups
}

// GetGroupDefinition returns the definition for a specific group.
func GetGroupDefinition(groupID string) (struct {
	Name        string
	Description string
	CheckIDs    []string
}, bool) {
	def, ok := groupDefinitions[groupID]
	return def, ok
}

// GetAllGroupIDs returns all group IDs in display order.
func GetAllGroupIDs() []string {
	return []string{GroupSystem, GroupAUR, GroupScripts}
}
