package domain

import (
	"time"

	"github.com/google/uuid"
)

var timeNow = time.Now

func newEventID() string {
	id, _ := uuid.NewV7()
	return id.String()
}
