package main

import (
	"encoding/json"
	"fmt"
	"os"

	"resume-portal/resume/model"
)

// inputFile is the JSON accepted by --in.
type inputFile struct {
	Student map[string]any `json:"student"`
	Resume  map[string]any `json:"resume"`
}

func loadInput(path string) (model.ResumeData, model.StudentInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.ResumeData{}, model.StudentInfo{}, fmt.Errorf("failed to read input: %w", err)
	}
	var in inputFile
	if err := json.Unmarshal(raw, &in); err != nil {
		return model.ResumeData{}, model.StudentInfo{}, fmt.Errorf("failed to parse input JSON: %w", err)
	}
	return model.ResumeDataFromMap(in.Resume), model.StudentInfoFromMap(in.Student), nil
}

func sampleInput() (model.ResumeData, model.StudentInfo) {
	info := model.StudentInfo{
		Name:   "Alex Morgan",
		Email:  "alex.morgan@university.edu",
		Branch: "Computer Science and Engineering",
	}
	data := model.ResumeData{
		Objective: "Final-year computer science student looking for a backend engineering role building reliable distributed systems.",
		Education: "B.Tech Computer Science and Engineering\nState University\n2021-2025\n• CGPA 8.9/10",
		Skills:    "Go, Python, PostgreSQL, Redis, Docker, Kubernetes, gRPC, AWS",
		Languages: "English, Hindi, German",
		Experience: "Backend Intern\nCloudWorks Inc.\nMay 2024 - Aug 2024\n" +
			"• Cut p99 latency of the billing API by 40% with query batching\n" +
			"• Added structured logging and tracing to six services",
		Projects: "Campus Placement Portal\n• Go REST API with role-based access for students and faculty\n\n" +
			"Distributed Key-Value Store\n• Raft-based replication with snapshotting",
		Certifications: "AWS Certified Cloud Practitioner\nCKAD",
		Achievements:   "Winner, State Hackathon 2023\nDean's List 2022, 2023",
		ReferencesInfo: "Available on request",
		AdditionalInfo: "Open source contributor to several Go libraries",
		Research:       "Consensus protocols\nStorage engines",
		Publications:   "Morgan A., \"Adaptive batching in Raft\", Student Systems Workshop 2024",
	}
	return data, info
}
