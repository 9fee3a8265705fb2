package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

type StorageDrawer struct {
	Name     string
	Capacity int
}

// SlotAddress formats the drawer-relative address of slot index i, e.g. "A-03".
func SlotAddress(drawer string, i int) string {
	return fmt.Sprintf("%s-%02d", drawer, i)
}

type User struct {
	Username     string
	PasswordHash string
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(ActivityLog{})
	gob.Register(Attachments{})
}
