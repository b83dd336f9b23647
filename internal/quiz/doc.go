// Package quiz decodes the quizdown blocks embedded in corpus pages:
// multiple-choice questions written as a heading, a task-list of options,
// and a blockquote explanation inside {{< quizdown >}} shortcode regions.
package quiz
