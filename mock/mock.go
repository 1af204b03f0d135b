// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mock provides the static health dataset displayed by vitals.
package mock

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kortschak/vitals/metric"
)

//go:embed data.json
var data []byte

// Load returns the embedded dataset.
func Load() (*Data, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a dataset in the embedded format from r.
func Decode(r io.Reader) (*Data, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var d Data
	err := dec.Decode(&d)
	if err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return &d, nil
}

// Data is the complete dataset.
type Data struct {
	Vitals            Vitals             `json:"vitals"`
	DailyActivity     DailyActivity      `json:"dailyActivity"`
	Location          Location           `json:"location"`
	HealthHistory     []HealthHistory    `json:"healthHistory"`
	Emergencies       []Emergency        `json:"emergencies"`
	User              UserDetails        `json:"userDetails"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts"`
	AllContacts       []Contact          `json:"allContacts"`
	Notifications     []Notification     `json:"notifications"`
	Quotes            []Quote            `json:"quotes"`
	Ecommerce         struct {
		Medicines []Medicine `json:"medicines"`
	} `json:"ecommerce"`
	Appointments []Appointment `json:"appointments"`
}

// Vitals holds the current vital signs and their history.
type Vitals struct {
	HeartRate       string                   `json:"heartRate"`
	BloodPressure   string                   `json:"bloodPressure"`
	BloodOxygen     string                   `json:"bloodOxygen"`
	PastReadings    metric.Series            `json:"pastReadings"`
	Recommendations map[metric.Metric]string `json:"recommendations"`
}

// DailyActivity holds today's activity and its history.
type DailyActivity struct {
	Steps           string                   `json:"steps"`
	SleepHours      string                   `json:"sleepHours"`
	CaloriesBurnt   string                   `json:"caloriesBurnt"`
	DistanceWalked  string                   `json:"distanceWalked"`
	StepGoal        float64                  `json:"stepGoal"`
	PastReadings    metric.Series            `json:"pastReadings"`
	Recommendations map[metric.Metric]string `json:"recommendations"`
	SleepDetails    SleepDetails             `json:"sleepDetails"`
}

type SleepDetails struct {
	Performance   float64 `json:"performance"`
	HoursVsNeeded struct {
		Actual float64 `json:"actual"`
		Needed float64 `json:"needed"`
	} `json:"hoursVsNeeded"`
	Consistency       float64            `json:"consistency"`
	Efficiency        float64            `json:"efficiency"`
	HighStress        float64            `json:"highStress"`
	WeeklyPerformance []SleepPerformance `json:"weeklyPerformance"`
}

type SleepPerformance struct {
	Day          string  `json:"day"`
	NormalSleep  float64 `json:"normalSleep"`
	AverageSleep float64 `json:"averageSleep"`
	DeepSleep    float64 `json:"deepSleep"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type HealthHistory struct {
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

type Emergency struct {
	Date     string `json:"date"`
	Summary  string `json:"summary"`
	Severity string `json:"severity"` // critical, major or minor
}

type HealthCondition struct {
	Name       string `json:"name"`
	Since      string `json:"since"`
	Status     string `json:"status"`
	Medication string `json:"medication"`
}

type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
	Condition string `json:"condition"`
}

type Doctor struct {
	Name    string `json:"name"`
	Clinic  string `json:"clinic"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	License string `json:"license"`
}

type Prescription struct {
	Medicine
	Date          string `json:"date"`
	Doctor        string `json:"doctor"`
	DoctorDetails Doctor `json:"doctorDetails"`
	File          string `json:"file"`
}

type Allergy struct {
	Name       string `json:"name"`
	Reaction   string `json:"reaction"`
	Precaution string `json:"precaution"`
}

type UserDetails struct {
	Username         string            `json:"username"`
	Age              int               `json:"age"`
	Gender           string            `json:"gender"`
	Height           string            `json:"height"`
	Weight           string            `json:"weight"`
	HealthConditions []HealthCondition `json:"healthConditions"`
	Medications      []Medication      `json:"medications"`
	Prescriptions    []Prescription    `json:"prescriptions"`
	Allergies        []Allergy         `json:"allergies"`
	Insurance        []string          `json:"insurance"`
	RecentHospitals  []string          `json:"recentHospitals"`
	HospitalContacts []string          `json:"hospitalContacts"`
	GuardianContacts []string          `json:"guardianContacts"`
}

type EmergencyContact struct {
	Contact
	Instructions string `json:"instructions"`
	Prioritized  bool   `json:"prioritized"`
}

type Contact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"` // critical, important or normal
}

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Medicine is a marketplace item.
type Medicine struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Price            string `json:"price"`
	Description      string `json:"description"`
	FrequentlyBought bool   `json:"frequentlyBought"`
}

// Appointment is a booked doctor's visit.
type Appointment struct {
	ID        int               `json:"id"`
	Doctor    string            `json:"doctor"`
	Specialty string            `json:"specialty"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Location  string            `json:"location"`
	Status    AppointmentStatus `json:"status"`
}
