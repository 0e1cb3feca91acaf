package subjects

// Subjects in the order they are reported when scores tie.
var Subjects = []string{
	"mathematics",
	"physics",
	"chemistry",
	"biology",
	"computer_science",
	"ai_ml",
	"engineering",
}

var keywords = map[string][]string{
	"mathematics": {
		"math", "algebra", "geometry", "calculus", "equation", "trigonometry",
		"statistics", "arithmetic", "logarithm", "matrix", "polynomial",
		"fraction", "decimal", "probability", "function", "graph",
	},
	"physics": {
		"physics", "force", "energy", "motion", "quantum", "mechanics",
		"gravity", "electricity", "magnetism", "optics", "thermodynamics",
		"velocity", "acceleration", "momentum", "wave", "particle",
	},
	"chemistry": {
		"chemistry", "molecule", "reaction", "compound", "element", "acid",
		"base", "atom", "periodic table", "organic", "inorganic", "solution",
		"bond", "electron", "proton", "neutron", "catalyst",
	},
	"biology": {
		"biology", "cell", "organism", "dna", "evolution", "ecology",
		"genetics", "protein", "enzyme", "chromosome", "species",
		"photosynthesis", "respiration", "ecosystem", "anatomy",
	},
	"computer_science": {
		"programming", "code", "algorithm", "software", "database", "computer",
		"javascript", "python", "java", "html", "css", "react", "api",
		"framework", "backend", "frontend", "web development", "app development",
		"data structure", "debugging",
	},
	"ai_ml": {
		"artificial intelligence", "machine learning", "deep learning", "neural network",
		"ai", "ml", "nlp", "computer vision", "tensorflow", "pytorch",
		"data science", "big data", "clustering", "classification",
	},
	"engineering": {
		"engineering", "mechanical", "electrical", "civil", "robotics",
		"circuit", "design", "construction", "manufacturing", "automation",
		"control system", "cad", "material science",
	},
}
