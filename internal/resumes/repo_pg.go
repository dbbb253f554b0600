package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// GetByStudentID returns the record for a student.
func (r *PGRepo) GetByStudentID(ctx context.Context, studentID int64) (Record, error) {
	const query = `
SELECT student_id, objective, education, skills, languages, experience, projects,
       certifications, achievements, references_info, additional_info,
       research, publications, conferences, teaching_experience, updated_at
FROM resumes
WHERE student_id = $1`
	var rec Record
	d := &rec.Data
	err := r.DB.QueryRowContext(ctx, query, studentID).Scan(
		&rec.StudentID,
		&d.Objective,
		&d.Education,
		&d.Skills,
		&d.Languages,
		&d.Experience,
		&d.Projects,
		&d.Certifications,
		&d.Achievements,
		&d.ReferencesInfo,
		&d.AdditionalInfo,
		&d.Research,
		&d.Publications,
		&d.Conferences,
		&d.TeachingExperience,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

// Upsert inserts or replaces the record for rec.StudentID.
func (r *PGRepo) Upsert(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO resumes (
    student_id, objective, education, skills, languages, experience, projects,
    certifications, achievements, references_info, additional_info,
    research, publications, conferences, teaching_experience, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
ON CONFLICT (student_id) DO UPDATE SET
    objective = EXCLUDED.objective,
    education = EXCLUDED.education,
    skills = EXCLUDED.skills,
    languages = EXCLUDED.languages,
    experience = EXCLUDED.experience,
    projects = EXCLUDED.projects,
    certifications = EXCLUDED.certifications,
    achievements = EXCLUDED.achievements,
    references_info = EXCLUDED.references_info,
    additional_info = EXCLUDED.additional_info,
    research = EXCLUDED.research,
    publications = EXCLUDED.publications,
    conferences = EXCLUDED.conferences,
    teaching_experience = EXCLUDED.teaching_experience,
    updated_at = EXCLUDED.updated_at`
	d := rec.Data
	_, err := r.DB.ExecContext(ctx, query,
		rec.StudentID,
		d.Objective,
		d.Education,
		d.Skills,
		d.Languages,
		d.Experience,
		d.Projects,
		d.Certifications,
		d.Achievements,
		d.ReferencesInfo,
		d.AdditionalInfo,
		d.Research,
		d.Publications,
		d.Conferences,
		d.TeachingExperience,
		rec.UpdatedAt,
	)
	return err
}

var _ Repo = (*PGRepo)(nil)
