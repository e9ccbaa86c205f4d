package domain

import "time"

type ScheduleType string

const (
	ScheduleTypePersonal ScheduleType = "Personal"
	ScheduleTypeTeam     ScheduleType = "Team"
	ScheduleTypeCompany  ScheduleType = "Company"
)

func (t ScheduleType) Valid() bool {
	switch t {
	case ScheduleTypePersonal, ScheduleTypeTeam, ScheduleTypeCompany:
		return true
	}
	return false
}

type Schedule struct {
	ID                int64        `json:"scheduleId"`
	ScheduleTitle     string       `json:"scheduleTitle"`
	ScheduleStartTime time.Time    `json:"scheduleStartTime"`
	ScheduleEndTime   time.Time    `json:"scheduleEndTime"`
	ScheduleNote      string       `json:"scheduleNote"`
	ScheduleType      ScheduleType `json:"scheduleType"`
	Share             bool         `json:"share"`
	Color             string       `json:"color"`
	AllDay            bool         `json:"allDay"`
	Deleted           bool         `json:"del_yn"`
	SalesMemberID     int64        `json:"-"`
	SalesMemberCode   int64        `json:"memberId"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

type ScheduleRequest struct {
	ScheduleTitle     string       `json:"scheduleTitle"`
	ScheduleStartTime time.Time    `json:"scheduleStartTime"`
	ScheduleEndTime   time.Time    `json:"scheduleEndTime"`
	ScheduleNote      string       `json:"scheduleNote"`
	ScheduleType      ScheduleType `json:"scheduleType"`
	Share             bool         `json:"share"`
	Color             string       `json:"color"`
	AllDay            bool         `json:"allDay"`
}

type ScheduleFilter struct {
	SalesMemberID int64
	TeamID        *int64
	StartTime     *time.Time
	EndTime       *time.Time
}
