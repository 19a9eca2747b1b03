package templates

// ProjectRow is one line of the project table.
type ProjectRow struct {
	ID        string
	Project   string
	Client    string
	CreatedBy string
	URL       string
}

// SortColumn is a sortable table header.
type SortColumn struct {
	Label     string
	Href      string
	Indicator string
	Active    bool
}

// ProjectForm holds the values and errors of the new project form.
type ProjectForm struct {
	Project string
	Client  string
	Errors  map[string]string
}

type ProjectListData struct {
	Rows       []ProjectRow
	Query      string
	Columns    []SortColumn
	Page       int
	TotalPages int
	TotalCount int
	PrevURL    string
	NextURL    string
	Clients    []string
	Form       ProjectForm
}

// ProjectInfoPanel is the project header, in display or edit mode.
type ProjectInfoPanel struct {
	ID        string
	Project   string
	Client    string
	CreatedBy string
	Editing   bool
	EditURL   string
	SaveURL   string
	CancelURL string
}

type RoomTab struct {
	ID         string
	Name       string
	SelectURL  string
	Selected   bool
	TotalHours string
}

type LineItemRow struct {
	ID           string
	Name         string
	HoursPerTask string
	QtyPerTask   string
	Subtotal     string
	UpdateURL    string
	DeleteURL    string
}

// TaskOption is one reference task offered as a name suggestion.
type TaskOption struct {
	Label string
	Hours string
}

type SubcategoryPanel struct {
	Category string
	Name     string
	ListID   string
	Items    []LineItemRow
	Subtotal string
	AddURL   string
	Options  []TaskOption
}

type CategoryPanel struct {
	Name          string
	Hours         string
	Raw           string
	Explanation   string
	Subcategories []SubcategoryPanel
}

type RoomPanel struct {
	ID                string
	Name              string
	Feet              int
	Inches            int
	DifficultyLabel   string
	DifficultyPercent int
	MeterClass        string
	RenameURL         string
	CeilingURL        string
	DeleteURL         string
	Categories        []CategoryPanel
	TotalHours        string
}

type WireRow struct {
	Index     int
	Type      string
	Length    string
	Quantity  int
	Cost      string
	UpdateURL string
}

type RackMaterialRow struct {
	Index     int
	Type      string
	Quantity  int
	Cost      string
	UpdateURL string
}

type MaterialsPanel struct {
	Wires             []WireRow
	RackMaterials     []RackMaterialRow
	WireTypes         []string
	RackMaterialTypes []string
	WireTotal         string
	RackTotal         string
	Total             string
	AddWireURL        string
	AddRackURL        string
}

// Modal kinds understood by ProjectModal.
const (
	ModalKindNone       = ""
	ModalKindAddRoom    = "add-room"
	ModalKindDeleteRoom = "delete-room"
	ModalKindInfo       = "info"
)

type ModalData struct {
	Kind       string
	Title      string
	Body       string
	RoomName   string
	AddRoomURL string
	DeleteURL  string
	CloseURL   string
}

type ProjectViewData struct {
	BaseURL      string
	Info         ProjectInfoPanel
	Rooms        []RoomTab
	Room         *RoomPanel
	NewRoomURL   string
	HelpURL      string
	ExportURL    string
	ProjectHours string
	Materials    MaterialsPanel
	Modal        ModalData
}
