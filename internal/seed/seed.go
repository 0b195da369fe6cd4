package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/kaan/degreeplan/internal/app/models"
	appRepos "github.com/kaan/degreeplan/internal/app/repositories"
	"github.com/kaan/degreeplan/internal/pkg/apperrors"
	"github.com/kaan/degreeplan/internal/pkg/auth"
	"github.com/kaan/degreeplan/internal/planning"
)

// CreateDefaultData seeds a small Georgia Tech style catalog, the BSCS degree
// program and a demo account. Existing rows are left alone so the seed is
// safe to run on every startup.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (catalog, programs, demo user)...")

	var finalErr error

	for _, course := range defaultCourses() {
		c := course
		if _, err := repos.CourseRepository.Create(ctx, &c); err != nil {
			if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("code", c.Code).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if _, err := repos.ProgramRepository.Create(ctx, defaultProgram()); err != nil {
		if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Error().Err(err).Msg("Error seeding degree program")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := createDemoUser(ctx, repos, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func createDemoUser(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	const demoEmail = "gburdell@gatech.edu"

	exists, err := repos.UserRepository.EmailExists(ctx, demoEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking demo user")
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword("Burdell1927")
	if err != nil {
		return err
	}

	major := "Computer Science"
	gradYear := 2028
	user := &models.User{
		Email:          demoEmail,
		Password:       hashed,
		FirstName:      "George",
		LastName:       "Burdell",
		Major:          &major,
		GraduationYear: &gradYear,
		IsActive:       true,
	}
	if _, err := repos.UserRepository.CreateUser(ctx, user); err != nil {
		lgr.Error().Err(err).Msg("Error seeding demo user")
		return err
	}

	lgr.Info().Str("email", demoEmail).Msg("Demo user created")
	return nil
}

// defaultCourses is a representative slice of the CS and MATH catalog with
// real prerequisite chains, including minimum grade requirements and OR
// alternatives.
func defaultCourses() []models.Course {
	c := func(code, subject, title string, credits int, prereqs, coreqs []planning.Expr) models.Course {
		return models.Course{
			Code:          code,
			Subject:       subject,
			Title:         title,
			Credits:       credits,
			Prerequisites: prereqs,
			Corequisites:  coreqs,
		}
	}

	return []models.Course{
		c("CS 1301", "CS", "Introduction to Computing", 3, nil, nil),
		c("CS 1331", "CS", "Introduction to Object-Oriented Programming", 3,
			[]planning.Expr{planning.Or(
				planning.ReqMin("CS 1301", "C"),
				planning.ReqMin("CS 1315", "C"),
				planning.ReqMin("CS 1371", "C"),
			)}, nil),
		c("CS 1315", "CS", "Introduction to Media Computation", 3, nil, nil),
		c("CS 1371", "CS", "Computing for Engineers", 3, nil, nil),
		c("CS 1332", "CS", "Data Structures and Algorithms", 3,
			[]planning.Expr{planning.ReqMin("CS 1331", "C")}, nil),
		c("CS 2050", "CS", "Introduction to Discrete Mathematics", 3,
			[]planning.Expr{planning.ReqMin("CS 1301", "C")}, nil),
		c("CS 2110", "CS", "Computer Organization and Programming", 4,
			[]planning.Expr{planning.ReqMin("CS 1331", "C")}, nil),
		c("CS 2340", "CS", "Objects and Design", 3,
			[]planning.Expr{planning.ReqMin("CS 1332", "C")}, nil),
		c("CS 3510", "CS", "Design and Analysis of Algorithms", 3,
			[]planning.Expr{planning.And(
				planning.ReqMin("CS 1332", "C"),
				planning.Or(
					planning.ReqMin("CS 2050", "C"),
					planning.ReqMin("MATH 2106", "C"),
				),
			)}, nil),
		c("CS 3600", "CS", "Introduction to Artificial Intelligence", 3,
			[]planning.Expr{planning.ReqMin("CS 1332", "C")}, nil),
		c("CS 4641", "CS", "Machine Learning", 3,
			[]planning.Expr{
				planning.ReqMin("CS 1331", "C"),
				planning.Or(
					planning.Req("MATH 2550"),
					planning.Req("MATH 2551"),
					planning.Req("MATH 2561"),
				),
			}, nil),
		c("MATH 1551", "MATH", "Differential Calculus", 2, nil, nil),
		c("MATH 1552", "MATH", "Integral Calculus", 4,
			[]planning.Expr{planning.ReqMin("MATH 1551", "C")}, nil),
		c("MATH 1554", "MATH", "Linear Algebra", 4, nil, nil),
		c("MATH 2106", "MATH", "Foundations of Mathematical Proof", 3,
			[]planning.Expr{planning.ReqMin("MATH 1552", "C")}, nil),
		c("MATH 2550", "MATH", "Introduction to Multivariable Calculus", 2,
			[]planning.Expr{planning.Or(
				planning.ReqMin("MATH 1552", "C"),
				planning.ReqMin("MATH 1564", "C"),
			)}, nil),
		c("MATH 2551", "MATH", "Multivariable Calculus", 4,
			[]planning.Expr{planning.And(
				planning.ReqMin("MATH 1552", "C"),
				planning.Or(
					planning.ReqMin("MATH 1554", "C"),
					planning.ReqMin("MATH 1522", "C"),
				),
			)}, nil),
		c("MATH 3012", "MATH", "Applied Combinatorics", 3,
			[]planning.Expr{planning.ReqMin("MATH 1552", "C")}, nil),
		c("PHYS 2211", "PHYS", "Introductory Physics I", 4, nil,
			[]planning.Expr{planning.Req("MATH 1552")}),
		c("PHYS 2212", "PHYS", "Introductory Physics II", 4,
			[]planning.Expr{planning.ReqMin("PHYS 2211", "D")}, nil),
		c("ENGL 1101", "ENGL", "English Composition I", 3, nil, nil),
		c("ENGL 1102", "ENGL", "English Composition II", 3,
			[]planning.Expr{planning.Req("ENGL 1101")}, nil),
	}
}

// defaultProgram mirrors the core of the BS in Computer Science.
func defaultProgram() *models.DegreeProgram {
	opt := func(code string, credits int) planning.CategoryCourse {
		return planning.CategoryCourse{Code: code, Credits: credits}
	}

	return &models.DegreeProgram{
		Code:         "BSCS",
		Name:         "Bachelor of Science in Computer Science",
		TotalCredits: 122,
		Categories: []planning.Category{
			{
				Name: "CS Core",
				Kind: planning.KindFixedList,
				Options: []planning.CategoryCourse{
					opt("CS 1301", 3), opt("CS 1331", 3), opt("CS 1332", 3),
					opt("CS 2050", 3), opt("CS 2110", 4), opt("CS 2340", 3),
					opt("CS 3510", 3),
				},
			},
			{
				Name: "Mathematics",
				Kind: planning.KindFixedList,
				Options: []planning.CategoryCourse{
					opt("MATH 1551", 2), opt("MATH 1552", 4),
					opt("MATH 1554", 4), opt("MATH 3012", 3),
				},
			},
			{
				Name: "Sciences",
				Kind: planning.KindFixedList,
				Options: []planning.CategoryCourse{
					opt("PHYS 2211", 4), opt("PHYS 2212", 4),
				},
			},
			{
				Name: "English",
				Kind: planning.KindFixedList,
				Options: []planning.CategoryCourse{
					opt("ENGL 1101", 3), opt("ENGL 1102", 3),
				},
			},
			{
				Name:            "Intelligence Thread",
				Kind:            planning.KindChooseN,
				RequiredCredits: 6,
				Basis:           planning.BasisCredits,
				Options: []planning.CategoryCourse{
					opt("CS 3600", 3), opt("CS 4641", 3), opt("MATH 2551", 4),
				},
			},
		},
	}
}
