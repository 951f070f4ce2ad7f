package render

// Kind identifies a section template family.
type Kind string

// Section kinds with their own default substitution template.
const (
	KindEntries     Kind = "entries"
	KindOutput      Kind = "output"
	KindList        Kind = "list"
	KindContactInfo Kind = "contact_info"
	KindSide        Kind = "side"
)

// BlockSeparator delimits rendered blocks: three consecutive blank lines.
const BlockSeparator = "\n\n\n\n"

// Default templates, one per section kind. Placeholder values are computed in
// Go before substitution; the templates themselves carry no logic. Kept
// verbatim-compatible with documents built against the original patterns.
const (
	defaultEntriesTemplate = `### {{.title}}

{{.loc}}

{{.institution}}

{{.timeline}}

{{.description_bullets}}

{{.extras}}`

	defaultOutputTemplate = `> {{.title}}<br>
> > {{.institution_bullets}}<br>`

	defaultListTemplate = `> <i class='fa fa-{{.icon}}'></i> {{.item}}`

	defaultContactInfoTemplate = `- <i class='fa fa-{{.icon}}'></i> {{.contact}}`

	defaultSideTemplate = `{{.entry_bullets}}`
)

// defaultTemplates maps each kind to its default template text.
var defaultTemplates = map[Kind]string{
	KindEntries:     defaultEntriesTemplate,
	KindOutput:      defaultOutputTemplate,
	KindList:        defaultListTemplate,
	KindContactInfo: defaultContactInfoTemplate,
	KindSide:        defaultSideTemplate,
}
