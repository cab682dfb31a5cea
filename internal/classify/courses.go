package classify

// Course-title catalogs per field. Attached verbatim as
// recommended_courses when the field is detected.
var (
	dsCourses = []string{
		"Machine Learning Crash Course by Google [Free]",
		"Machine Learning A-Z by Udemy",
		"Machine Learning by Andrew NG",
		"Data Scientist Master Program of Simplilearn (IBM)",
		"Data Science Foundation Program [Free]",
		"Data Scientist with Python",
		"Programming for Data Science with Python",
		"Programming for Data Science with R",
		"Introduction to Data Science",
		"Intro to Machine Learning",
	}

	webCourses = []string{
		"Django Crash course [Free]",
		"Python and Django Full Stack Web Developer Bootcamp",
		"React Crash Course [Free]",
		"ReactJS Project Development Training",
		"Full Stack Web Developer - MEAN Stack",
		"Node.js and Express.js [Free]",
		"Flask: Develop Web Applications in Python",
		"Full Stack Web Developer by Udacity",
		"Front End Web Developer by Udacity",
		"Become a React Developer by Udacity",
	}

	androidCourses = []string{
		"Android Development for Beginners [Free]",
		"Android App Development Specialization",
		"Associate Android Developer Certification",
		"Become an Android Kotlin Developer by Udacity",
		"Android Basics by Google",
		"The Complete Android Developer Course",
		"Building an Android App with Architecture Components",
		"Android App Developer by LinkedIn Learning",
		"Flutter & Dart - The Complete Flutter App Development Course",
		"Flutter App Development Course [Free]",
	}

	iosCourses = []string{
		"IOS App Development by LinkedIn Learning",
		"iOS & Swift - The Complete iOS App Development Bootcamp",
		"Become an iOS Developer",
		"iOS App Development with Swift Specialization",
		"Mobile App Development with Swift",
		"Swift Course by LinkedIn Learning",
		"Objective-C Crash Course for Swift Developers",
		"Learn Swift by Codecademy",
		"Swift Tutorial - Full Course for Beginners [Free]",
		"Learn Swift Fast - [Free]",
	}

	uiuxCourses = []string{
		"Google UX Design Professional Certificate",
		"UI / UX Design Specialization",
		"The Complete App Design Course - UX, UI and Design Thinking",
		"UX & Web Design Master Course: Strategy, Design, Development",
		"The Complete App Design Course - UX and UI Design",
		"UX Design for Mobile Developers by Udacity",
		"Adobe XD Tutorial: User Experience Design Course [Free]",
		"Adobe XD for Beginners [Free]",
		"DESIGN RULES: Principles + Practices for Great UI Design",
		"Become a UX Designer by Udacity",
	}
)

// CoursesForField returns the course catalog for a field label, or nil
// when the field has no catalog (including Not Detected).
func CoursesForField(field string) []string {
	for _, f := range fields {
		if string(f.field) == field {
			return f.courses
		}
	}
	return nil
}
