package model

type SetOpTab struct {
	ID       uint64 `json:"id"`
	Op       string `json:"op"`
	SetName  string `json:"set_name"`
	TypeName string `json:"type_name"`
	Family   string `json:"family"`
	Detail   string `json:"detail"`
	CTime    uint64 `json:"ctime"`
}

type ListSetOpCondition struct {
	SetName      string
	CtimeBetween []uint64
}
