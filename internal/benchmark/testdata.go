package benchmark

// FinderTestCase is a contest with manually verified editorial URLs.
type FinderTestCase struct {
	ContestID   string
	Expected    []string // empty when the contest has no editorial
	Description string
}

// ExpectedProblem records whether a problem should appear in a segmented
// editorial.
type ExpectedProblem struct {
	ContestID   string
	ProblemID   string
	ShouldExist bool
}

// SegmentationTestCase is a contest editorial with known problem coverage.
type SegmentationTestCase struct {
	ContestID    string
	EditorialURL []string
	Expected     []ExpectedProblem
	Description  string
}

// FinderTestCases is the editorial finder ground truth, verified by hand
// against the contest pages.
var FinderTestCases = []FinderTestCase{
	{
		ContestID:   "2185",
		Expected:    []string{"https://codeforces.com/blog/entry/150288"},
		Description: "Codeforces Round 1074 (Div. 4)",
	},
	{
		ContestID:   "2190",
		Expected:    []string{"https://codeforces.com/blog/entry/150256"},
		Description: "Codeforces Round 1073 (Div. 1)",
	},
	{
		ContestID:   "2191",
		Expected:    []string{"https://codeforces.com/blog/entry/150256"},
		Description: "Codeforces Round 1073 (Div. 2)",
	},
	{
		ContestID:   "2184",
		Expected:    []string{"https://codeforces.com/blog/entry/150033"},
		Description: "Codeforces Round 1072 (Div. 3)",
	},
	{
		ContestID:   "2183",
		Expected:    []string{"https://codeforces.com/blog/entry/149944"},
		Description: "Hello 2026",
	},
	{
		ContestID:   "2182",
		Expected:    []string{"https://codeforces.com/blog/entry/149733"},
		Description: "Educational Codeforces Round 186 (Rated for Div. 2)",
	},
	{
		ContestID:   "2178",
		Expected:    []string{"https://codeforces.com/blog/entry/149548"},
		Description: "Good Bye 2025",
	},
	{
		ContestID:   "2177",
		Expected:    nil,
		Description: "ICPC 2025 Online Winter Challenge powered by Huawei",
	},
	{
		ContestID: "36",
		Expected: []string{
			"https://codeforces.com/blog/entry/773",
			"https://codeforces.com/blog/entry/774",
			"https://codeforces.com/blog/entry/768",
			"https://codeforces.com/blog/entry/769",
			"https://codeforces.com/blog/entry/770",
			"https://codeforces.com/blog/entry/771",
		},
		Description: "Codeforces Beta Round 36",
	},
	{
		ContestID:   "2102",
		Expected:    []string{"https://codeforces.com/blog/entry/142788"},
		Description: "Codeforces Round 1024 (Div. 2)",
	},
	{
		ContestID:   "2124",
		Expected:    []string{"https://codeforces.com/blog/entry/144382"},
		Description: "EPIC Institute of Technology Round Summer 2025 (Codeforces Round 1036, Div. 1 + Div. 2)",
	},
	{
		ContestID:   "1975",
		Expected:    []string{"https://codeforces.com/blog/entry/129801"},
		Description: "Codeforces Round 947 (Div. 1 + Div. 2)",
	},
	{
		ContestID:   "1970",
		Expected:    []string{"https://codeforces.com/blog/entry/129149"},
		Description: "Helvetic Coding Contest 2024",
	},
	{
		ContestID:   "1992",
		Expected:    []string{"https://codeforces.com/blog/entry/131461"},
		Description: "Codeforces Round 957 (Div. 3)",
	},
	{
		ContestID:   "1991",
		Expected:    []string{"https://codeforces.com/blog/entry/132021"},
		Description: "Pinely Round 4 (Div. 1 + Div. 2)",
	},
	{
		ContestID:   "2010",
		Expected:    nil,
		Description: "Testing Round 19 (Div. 3)",
	},
	{
		ContestID:   "1866",
		Expected:    []string{"https://codeforces.com/blog/entry/120025"},
		Description: "COMPFEST 15 - Preliminary Online Mirror (Unrated, ICPC Rules, Teams Preferred)",
	},
	{
		ContestID:   "1860",
		Expected:    []string{"https://codeforces.com/blog/entry/119504"},
		Description: "Educational Codeforces Round 153 (Rated for Div. 2)",
	},
	{
		ContestID:   "1856",
		Expected:    []string{"https://codeforces.com/blog/entry/119058"},
		Description: "Codeforces Round 890 (Div. 2) supported by Constructor Institute",
	},
	{
		ContestID:   "1826",
		Expected:    []string{"https://codeforces.com/blog/entry/115892"},
		Description: "Codeforces Round 870 (Div. 2)",
	},
	{
		ContestID:   "1774",
		Expected:    []string{"https://codeforces.com/blog/entry/110184"},
		Description: "Polynomial Round 2022 (Div. 1 + Div. 2, Rated, Prizes!)",
	},
	{
		ContestID:   "1770",
		Expected:    []string{"https://codeforces.com/blog/entry/110754"},
		Description: "Good Bye 2022: 2023 is NEAR",
	},
}

// SegmentationTestCases is kept short since every case costs a large
// completion per model.
var SegmentationTestCases = []SegmentationTestCase{
	{
		ContestID:    "2185",
		EditorialURL: []string{"https://codeforces.com/blog/entry/150288"},
		Expected: []ExpectedProblem{
			{ContestID: "2185", ProblemID: "A", ShouldExist: true},
			{ContestID: "2185", ProblemID: "B", ShouldExist: true},
			{ContestID: "2185", ProblemID: "C", ShouldExist: true},
			{ContestID: "2185", ProblemID: "D", ShouldExist: true},
			{ContestID: "2185", ProblemID: "E", ShouldExist: true},
			{ContestID: "2185", ProblemID: "F", ShouldExist: true},
		},
		Description: "Codeforces Round 1074 (Div. 4)",
	},
	{
		ContestID:    "2177",
		EditorialURL: nil,
		Expected:     nil,
		Description:  "ICPC 2025 - no editorial",
	},
	{
		ContestID:    "2184",
		EditorialURL: []string{"https://codeforces.com/blog/entry/150033"},
		Expected: []ExpectedProblem{
			{ContestID: "2184", ProblemID: "A", ShouldExist: true},
			{ContestID: "2184", ProblemID: "B", ShouldExist: true},
			{ContestID: "2184", ProblemID: "C", ShouldExist: true},
			{ContestID: "2184", ProblemID: "D", ShouldExist: true},
			{ContestID: "2184", ProblemID: "E", ShouldExist: true},
			{ContestID: "2184", ProblemID: "F", ShouldExist: true},
			{ContestID: "2184", ProblemID: "G", ShouldExist: true},
		},
		Description: "Codeforces Round 1072 (Div. 3)",
	},
}
