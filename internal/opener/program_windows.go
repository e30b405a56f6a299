package opener

const defaultProgram = "explorer"
