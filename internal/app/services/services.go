package services

// Services defined in this package:
// - Lookup: existence and uniqueness checks run before any mutation
// - StudentService: student CRUD, optionally enrolling the student in courses
// - CourseService: course CRUD
// - EnrollmentService: enroll, withdraw and list student/course links
//
// Every mutation runs in one transaction; repositories and the Lookup used
// inside it are bound to that transaction.

// dedupeIDs returns ids without repeats, keeping first-seen order
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
