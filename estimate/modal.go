package estimate

type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalAddRoom
	ModalDeleteRoom
	ModalInfo
)

// InfoKind selects the help text shown in an info modal.
type InfoKind string

const (
	InfoProject    InfoKind = "project"
	InfoRoom       InfoKind = "room"
	InfoDifficulty InfoKind = "difficulty"
	InfoRounding   InfoKind = "rounding"
	InfoMaterials  InfoKind = "materials"
)

// ValidInfoKind reports whether s names an info modal.
func ValidInfoKind(s string) bool {
	switch InfoKind(s) {
	case InfoProject, InfoRoom, InfoDifficulty, InfoRounding, InfoMaterials:
		return true
	}
	return false
}

// Modal is the single dialog open on a project view. Fields are private so a
// Modal can only be built through the constructors below, which keeps the
// room id and info kind attached to the right variant.
type Modal struct {
	kind   ModalKind
	roomID string
	info   InfoKind
}

func NoModal() Modal { return Modal{} }

func AddRoomModal() Modal { return Modal{kind: ModalAddRoom} }

func DeleteRoomModal(roomID string) Modal {
	return Modal{kind: ModalDeleteRoom, roomID: roomID}
}

func InfoModal(kind InfoKind) Modal {
	return Modal{kind: ModalInfo, info: kind}
}

func (m Modal) Kind() ModalKind { return m.kind }

// RoomID is the room awaiting delete confirmation.
func (m Modal) RoomID() (string, bool) {
	return m.roomID, m.kind == ModalDeleteRoom
}

func (m Modal) Info() (InfoKind, bool) {
	return m.info, m.kind == ModalInfo
}
