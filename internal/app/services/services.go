package services

// Services defined in this package:
// - AuthService: Handles authentication, registration and token refresh
// - CatalogService: Read access to catalog courses
// - ProgramService: Read access to degree programs and their requirements
// - PlanService: Degree plan editing, prerequisite validation, GPA and progress
