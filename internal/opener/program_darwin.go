package opener

const defaultProgram = "open"
