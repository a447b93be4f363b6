package catalog

// StaticLessons returns the built-in lesson modules. These are defined once
// at process start and never mutated.
func StaticLessons() []Lesson {
	return []Lesson{
		javascriptBasics(),
		reactIntro(),
		webDesign(),
	}
}

func javascriptBasics() Lesson {
	return Lesson{
		ID:          "javascript_basics",
		Title:       "JavaScript Fundamentals",
		Icon:        "🚀",
		Subtitle:    "Master the building blocks of modern web development",
		Description: "Learn JavaScript from scratch with hands-on examples",
		Duration:    "45 min",
		Difficulty:  "Beginner",
		Sections: []Section{
			{
				ID:    "variables",
				Title: "Variables & Data Types",
				Icon:  "📦",
				Content: Content{
					WhyCare: "Variables are like labeled boxes where you store information. Without them, your code can't remember anything! Think of them as your app's short-term memory.",
					Concepts: []Concept{
						{
							Title:   "let & const",
							Preview: "Modern ways to declare variables",
							Details: "Use let when the value might change, and const when it won't. It's like choosing between a whiteboard (let) and a permanent marker (const).\n\nlet score = 0;           // can change\nconst playerName = \"Alex\"; // can't change",
						},
						{
							Title:   "Data Types",
							Preview: "Numbers, strings, booleans, and more",
							Details: "JavaScript has several types of data:\n  Numbers:  42, 3.14\n  Strings:  \"Hello\", 'World'\n  Booleans: true, false\n  Arrays:   [1, 2, 3]\n  Objects:  {name: \"Alex\", age: 25}",
						},
					},
					Examples: []Example{
						{
							Title:       "Real-World Example: Shopping Cart",
							Code:        "let cartTotal = 0;\nconst taxRate = 0.08;\nlet itemCount = 0;\n\n// Add item to cart\ncartTotal += 29.99;\nitemCount++;\n\nconsole.log(`Total: $${cartTotal}`);\nconsole.log(`Items: ${itemCount}`);",
							Explanation: "This is how an online store might track your shopping cart!",
						},
					},
					Quiz: &Quiz{
						Question: "You need to store a user's email address. Which should you use?",
						Options: []string{
							"let email = \"user@example.com\" - because emails can change",
							"const email = \"user@example.com\" - because the value won't change during the session",
							"var email = \"user@example.com\" - because that's the old way",
							"Just use the email directly without storing it",
						},
						CorrectIndex: 0,
						Explanation:  "Use let because a user might update their email. const is for values that never change, like const MAX_LOGIN_ATTEMPTS = 3;",
					},
					Challenge: &Challenge{
						Title:       "Mini Challenge: Create a Profile",
						Description: "Create variables to store a user profile with name (can't change), age (can change), and isActive (boolean).",
						Hint:        "Think about which values might need to be updated later!",
						Solution:    "const name = \"Alex\";\nlet age = 25;\nlet isActive = true;",
					},
				},
			},
			{
				ID:    "functions",
				Title: "Functions",
				Icon:  "⚙️",
				Content: Content{
					WhyCare: "Functions are reusable blocks of code. Instead of writing the same code 100 times, you write it once and call it whenever you need it. It's like saving a recipe instead of memorizing it!",
					Concepts: []Concept{
						{
							Title:   "Function Declaration",
							Preview: "The traditional way to create functions",
							Details: "function greet(name) {\n  return `Hello, ${name}!`;\n}\n\ngreet(\"Alex\"); // \"Hello, Alex!\"",
						},
						{
							Title:   "Arrow Functions",
							Preview: "Modern, concise syntax",
							Details: "Arrow functions are shorter and cleaner:\n\nconst greet = (name) => `Hello, ${name}!`;\n\nSame result, less typing!",
						},
					},
					Examples: []Example{
						{
							Title:       "Real-World: Calculate Discount",
							Code:        "const calculateDiscount = (price, discount) => {\n  const savings = price * (discount / 100);\n  return price - savings;\n};\n\nconst finalPrice = calculateDiscount(100, 20);\nconsole.log(`You pay: $${finalPrice}`); // $80",
							Explanation: "This is how websites calculate sale prices!",
						},
					},
					Quiz: &Quiz{
						Question: "What's the main benefit of using functions?",
						Options: []string{
							"They make your code run faster",
							"You can reuse code instead of repeating it",
							"They make your code look fancier",
							"Functions are required by JavaScript",
						},
						CorrectIndex: 1,
						Explanation:  "Functions let you write code once and use it many times. This makes your code cleaner, easier to maintain, and reduces bugs!",
					},
					Challenge: &Challenge{
						Title:       "Challenge: Temperature Converter",
						Description: "Write a function that converts Celsius to Fahrenheit. Formula: (C × 9/5) + 32",
						Hint:        "Create a function that takes celsius as a parameter and returns fahrenheit",
						Solution:    "const celsiusToFahrenheit = (celsius) => {\n  return (celsius * 9/5) + 32;\n};\n\nconsole.log(celsiusToFahrenheit(0));   // 32\nconsole.log(celsiusToFahrenheit(100)); // 212",
					},
				},
			},
			{
				ID:    "arrays",
				Title: "Arrays & Objects",
				Icon:  "🗂️",
				Content: Content{
					WhyCare: "Arrays let you store lists of things - like a playlist of songs, a todo list, or a shopping cart. Objects let you group related information together, like all the details about a user.",
					Concepts: []Concept{
						{
							Title:   "Arrays",
							Preview: "Lists of items",
							Details: "Arrays store multiple values in order:\n\nconst fruits = [\"apple\", \"banana\", \"orange\"];\nconsole.log(fruits[0]); // \"apple\"\nfruits.push(\"grape\");   // add to end",
						},
						{
							Title:   "Objects",
							Preview: "Grouped information",
							Details: "Objects store key-value pairs:\n\nconst user = {\n  name: \"Alex\",\n  age: 25,\n  email: \"alex@example.com\"\n};\n\nconsole.log(user.name); // \"Alex\"",
						},
					},
					Examples: []Example{
						{
							Title:       "Real-World: Todo List App",
							Code:        "const todos = [\n  { id: 1, task: \"Learn JavaScript\", done: false },\n  { id: 2, task: \"Build a project\", done: false }\n];\n\n// Mark first todo as done\ntodos[0].done = true;\n\n// Add new todo\ntodos.push({ id: 3, task: \"Deploy app\", done: false });",
							Explanation: "This is exactly how todo apps store your tasks!",
						},
					},
					Quiz: &Quiz{
						Question: "When should you use an array vs an object?",
						Options: []string{
							"Use arrays for ordered lists, objects for related properties",
							"Arrays are faster, always use arrays",
							"Objects are newer, always use objects",
							"It doesn't matter, they're the same thing",
						},
						CorrectIndex: 0,
						Explanation:  "Use arrays when you need an ordered list (like [item1, item2, item3]). Use objects when you need to group related properties (like {name: \"Alex\", age: 25}).",
					},
					Challenge: &Challenge{
						Title:       "Challenge: Student Records",
						Description: "Create an array of student objects. Each student should have name, grade, and age properties.",
						Hint:        "Combine arrays and objects!",
						Solution:    "const students = [\n  { name: \"Alex\", grade: \"A\", age: 20 },\n  { name: \"Sam\", grade: \"B\", age: 19 },\n  { name: \"Jordan\", grade: \"A\", age: 21 }\n];\n\nconsole.log(students[0].name); // \"Alex\"",
					},
				},
			},
		},
	}
}

func reactIntro() Lesson {
	return Lesson{
		ID:          "react_intro",
		Title:       "React Essentials",
		Icon:        "⚛️",
		Subtitle:    "Build interactive UIs with React",
		Description: "Learn React fundamentals and create your first component",
		Duration:    "60 min",
		Difficulty:  "Intermediate",
		Sections: []Section{
			{
				ID:    "components",
				Title: "Components",
				Icon:  "🧩",
				Content: Content{
					WhyCare: "React components are like LEGO blocks - you build small, reusable pieces and combine them to create complex UIs. This makes your code organized and easier to maintain!",
					Concepts: []Concept{
						{
							Title:   "What is a Component?",
							Preview: "Reusable pieces of UI",
							Details: "A component is a JavaScript function that returns HTML-like code (JSX):\n\nfunction Button() {\n  return <button>Click me!</button>;\n}",
						},
						{
							Title:   "Props",
							Preview: "Passing data to components",
							Details: "Props let you customize components:\n\nfunction Greeting({ name }) {\n  return <h1>Hello, {name}!</h1>;\n}\n\n<Greeting name=\"Alex\" />",
						},
					},
					Examples: []Example{
						{
							Title:       "Real-World: User Card",
							Code:        "function UserCard({ name, role, avatar }) {\n  return (\n    <div className=\"card\">\n      <img src={avatar} alt={name} />\n      <h2>{name}</h2>\n      <p>{role}</p>\n    </div>\n  );\n}\n\n// Use it:\n<UserCard\n  name=\"Alex\"\n  role=\"Developer\"\n  avatar=\"/alex.jpg\"\n/>",
							Explanation: "This is how social media sites display user profiles!",
						},
					},
					Quiz: &Quiz{
						Question: "What's the main advantage of React components?",
						Options: []string{
							"They make websites load faster",
							"You can reuse UI pieces throughout your app",
							"They automatically add CSS styling",
							"They work without JavaScript",
						},
						CorrectIndex: 1,
						Explanation:  "Components let you build reusable UI pieces. Create a Button component once, use it everywhere!",
					},
					Challenge: &Challenge{
						Title:       "Challenge: Product Card",
						Description: "Create a ProductCard component that displays product name, price, and an image.",
						Hint:        "Use props to pass the product information",
						Solution:    "function ProductCard({ name, price, image }) {\n  return (\n    <div className=\"product-card\">\n      <img src={image} alt={name} />\n      <h3>{name}</h3>\n      <p className=\"price\">${price}</p>\n      <button>Add to Cart</button>\n    </div>\n  );\n}",
					},
				},
			},
		},
	}
}

func webDesign() Lesson {
	return Lesson{
		ID:          "web_design",
		Title:       "Web Design Principles",
		Icon:        "🎨",
		Subtitle:    "Create beautiful, user-friendly interfaces",
		Description: "Learn design fundamentals that make websites look amazing",
		Duration:    "40 min",
		Difficulty:  "Beginner",
		Sections: []Section{
			{
				ID:    "design_basics",
				Title: "Design Basics",
				Icon:  "✨",
				Content: Content{
					WhyCare: "Good design isn't just about making things pretty - it's about making them easy and enjoyable to use. People judge websites in 0.05 seconds, so design matters!",
					Concepts: []Concept{
						{
							Title:   "Color Theory",
							Preview: "Choose colors that work together",
							Details: "Use a color palette with:\n  Primary color:   your main brand color\n  Secondary color: complements the primary\n  Accent color:    for calls-to-action\n  Neutrals:        grays for text and backgrounds\n\nPro tip: use tools like Coolors or Adobe Color to find palettes!",
						},
						{
							Title:   "Typography",
							Preview: "Make text readable and beautiful",
							Details: "Good typography rules:\n  Use max 2-3 font families\n  Headings: bold, larger size\n  Body text: 16px minimum\n  Line height: 1.5-1.7 for readability\n  Contrast: dark text on light backgrounds",
						},
						{
							Title:   "White Space",
							Preview: "Give your content room to breathe",
							Details: "White space (empty space) makes designs look clean and professional. Don't cram everything together!\n\nThink of it like a nice room - you need space between furniture to move around comfortably.",
						},
					},
					Examples: []Example{
						{
							Title:       "Before & After: Button Design",
							Code:        "/* Bad */\nbutton {\n  background: red;\n  color: yellow;\n  padding: 2px;\n  font-size: 10px;\n}\n\n/* Good */\nbutton {\n  background: #6366f1;\n  color: white;\n  padding: 12px 24px;\n  font-size: 16px;\n  border-radius: 8px;\n  border: none;\n  cursor: pointer;\n}",
							Explanation: "The good version has better colors, spacing, and is easier to click!",
						},
					},
					Quiz: &Quiz{
						Question: "Why is white space important in design?",
						Options: []string{
							"It makes designs load faster",
							"It helps content breathe and improves readability",
							"It saves on printing costs",
							"It's a requirement for all websites",
						},
						CorrectIndex: 1,
						Explanation:  "White space gives your content room to breathe, making it easier to read and more pleasant to look at. Cramped designs feel overwhelming!",
					},
					Challenge: &Challenge{
						Title:       "Challenge: Design a Card",
						Description: "Write CSS for a card component with good spacing, readable typography, and a nice color scheme.",
						Hint:        "Think about padding, margin, font-size, and colors!",
						Solution:    ".card {\n  background: white;\n  padding: 24px;\n  border-radius: 12px;\n  box-shadow: 0 2px 8px rgba(0,0,0,0.1);\n  max-width: 400px;\n}",
					},
				},
			},
		},
	}
}
