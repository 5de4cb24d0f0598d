package detail

import nt "bankview/entity"

type DetailMsg interface {
	isDetailMsg()
}

func (SizeMsg) isDetailMsg()   {}
func (RecordMsg) isDetailMsg() {}

type SizeMsg struct {
	Width  int
	Height int
}

type RecordMsg struct {
	Record nt.Record
}
